package domain

// Settings controls where the report reads from and writes to.
type Settings struct {
	InputPath    string  `mapstructure:"input"`
	OutputPath   string  `mapstructure:"output"`
	ChartsDir    string  `mapstructure:"charts_dir"`
	PictureWidth float64 `mapstructure:"picture_width"` // inches
	ChartWidth   float64 `mapstructure:"chart_width"`   // inches
	ChartHeight  float64 `mapstructure:"chart_height"`  // inches
	ChartDPI     int     `mapstructure:"chart_dpi"`
	Seed         uint64  `mapstructure:"seed"`
	LogLevel     string  `mapstructure:"log_level"`
}

const (
	DefaultInputPath  = "infopercept_analytics.json"
	DefaultOutputPath = "INFOPERCEPT_AI_Styled_Report.docx"
)

func DefaultSettings() Settings {
	return Settings{
		InputPath:    DefaultInputPath,
		OutputPath:   DefaultOutputPath,
		ChartsDir:    ".",
		PictureWidth: 5,
		ChartWidth:   6,
		ChartHeight:  4,
		ChartDPI:     100,
		LogLevel:     "info",
	}
}

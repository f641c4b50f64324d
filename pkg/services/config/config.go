package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/de-tools/atlas-report/pkg/models/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "REPORT"

// NewViper returns a viper instance preloaded with the default settings and bound to REPORT_* variables.
func NewViper() *viper.Viper {
	d := domain.DefaultSettings()

	v := viper.New()
	v.SetDefault("input", d.InputPath)
	v.SetDefault("output", d.OutputPath)
	v.SetDefault("charts_dir", d.ChartsDir)
	v.SetDefault("picture_width", d.PictureWidth)
	v.SetDefault("chart_width", d.ChartWidth)
	v.SetDefault("chart_height", d.ChartHeight)
	v.SetDefault("chart_dpi", d.ChartDPI)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadEnvFile loads variables from a dotenv file. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// LoadConfig resolves settings from defaults, the optional config file at profilePath,
// REPORT_* environment variables and any flags already bound to v.
func LoadConfig(v *viper.Viper, profilePath string) (*domain.Settings, error) {
	if profilePath != "" {
		v.SetConfigFile(profilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg domain.Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse report config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *domain.Settings) error {
	switch {
	case cfg.InputPath == "":
		return fmt.Errorf("input path must not be empty")
	case cfg.OutputPath == "":
		return fmt.Errorf("output path must not be empty")
	case cfg.PictureWidth <= 0:
		return fmt.Errorf("picture_width must be positive, got %v", cfg.PictureWidth)
	case cfg.ChartWidth <= 0 || cfg.ChartHeight <= 0:
		return fmt.Errorf("chart size must be positive, got %vx%v", cfg.ChartWidth, cfg.ChartHeight)
	case cfg.ChartDPI <= 0:
		return fmt.Errorf("chart_dpi must be positive, got %d", cfg.ChartDPI)
	}
	if cfg.ChartsDir == "" {
		cfg.ChartsDir = "."
	}
	return nil
}

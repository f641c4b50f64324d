package workflow

import (
	"github.com/de-tools/atlas-report/pkg/models/domain"
	"github.com/de-tools/atlas-report/pkg/services/charts"
	"github.com/de-tools/atlas-report/pkg/services/loader"
	"github.com/de-tools/atlas-report/pkg/services/report"
	"github.com/de-tools/atlas-report/pkg/store/docx"
	"gonum.org/v1/plot/vg"
)

// NewDefaultRunner wires the file loader, PNG renderer, embedded narrative and docx writer
// according to settings.
func NewDefaultRunner(settings domain.Settings) (*Runner, error) {
	narrative, err := report.DefaultNarrative()
	if err != nil {
		return nil, err
	}

	renderer := charts.NewRenderer(charts.RendererConfig{
		Dir:    settings.ChartsDir,
		Width:  vg.Length(settings.ChartWidth) * vg.Inch,
		Height: vg.Length(settings.ChartHeight) * vg.Inch,
		DPI:    settings.ChartDPI,
		Specs:  domain.DefaultChartSpecs(),
	})

	assembler := report.NewAssembler(narrative, report.AssemblerConfig{
		PictureWidth: settings.PictureWidth,
	})

	return NewRunner(
		loader.NewLoader(),
		charts.NewSampler(settings.Seed),
		renderer,
		assembler,
		docx.NewWriter(),
		RunnerConfig{
			InputPath:  settings.InputPath,
			OutputPath: settings.OutputPath,
		},
	), nil
}

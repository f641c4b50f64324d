package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/atlas-report/pkg/models/domain"
	"github.com/de-tools/atlas-report/pkg/services/charts"
	"github.com/de-tools/atlas-report/pkg/services/loader"
	"github.com/de-tools/atlas-report/pkg/services/report"
	"github.com/de-tools/atlas-report/pkg/store/docx"
	"github.com/rs/zerolog"
)

// Sampler generates the synthetic chart data.
type Sampler interface {
	Sample() domain.SyntheticSeries
}

// Runner executes load, chart rendering, assembly and save strictly in that order.
type Runner struct {
	loader    loader.Loader
	sampler   Sampler
	renderer  charts.Renderer
	assembler report.Assembler
	writer    docx.Writer
	config    RunnerConfig
}

type RunnerConfig struct {
	InputPath  string
	OutputPath string
}

func NewRunner(
	l loader.Loader,
	sampler Sampler,
	renderer charts.Renderer,
	assembler report.Assembler,
	writer docx.Writer,
	config RunnerConfig,
) *Runner {
	return &Runner{
		loader:    l,
		sampler:   sampler,
		renderer:  renderer,
		assembler: assembler,
		writer:    writer,
		config:    config,
	}
}

// Run stops at the first failing stage. Artifacts written by earlier stages are left in place.
func (r *Runner) Run(ctx context.Context) (*domain.RunSummary, error) {
	logger := zerolog.Ctx(ctx).With().Str("input", r.config.InputPath).Logger()
	started := time.Now()

	input, err := r.loader.Load(ctx, r.config.InputPath)
	if err != nil {
		return nil, err
	}
	logger.Info().Msg("analytics input loaded")

	series := r.sampler.Sample()
	artifacts, err := r.renderer.Render(ctx, series)
	if err != nil {
		return nil, fmt.Errorf("failed to render charts: %w", err)
	}
	logger.Info().Int("charts", len(artifacts)).Msg("charts rendered")

	doc, err := r.assembler.Assemble(ctx, input, artifacts)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble report: %w", err)
	}

	if err := r.writer.Save(ctx, doc, r.config.OutputPath); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	summary := &domain.RunSummary{
		InputPath:    r.config.InputPath,
		OutputPath:   r.config.OutputPath,
		Charts:       artifacts,
		ServiceCount: serviceCount(doc),
		StartedAt:    started,
		Duration:     time.Since(started),
	}
	logger.Info().
		Str("output", summary.OutputPath).
		Dur("duration", summary.Duration).
		Msg("report written")

	return summary, nil
}

func serviceCount(doc *domain.ReportDocument) int {
	tables := doc.Tables()
	if len(tables) == 0 {
		return 0
	}
	return len(tables[0].Rows) - 1
}

package charts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/de-tools/atlas-report/pkg/models/domain"
	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Renderer turns synthetic series into PNG chart files.
type Renderer interface {
	Render(ctx context.Context, series domain.SyntheticSeries) ([]domain.ChartArtifact, error)
}

type RendererConfig struct {
	Dir    string
	Width  vg.Length
	Height vg.Length
	DPI    int
	Specs  []domain.ChartSpec
}

func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		Dir:    ".",
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
		DPI:    100,
		Specs:  domain.DefaultChartSpecs(),
	}
}

type pngRenderer struct {
	config RendererConfig
}

func NewRenderer(config RendererConfig) Renderer {
	if len(config.Specs) == 0 {
		config.Specs = domain.DefaultChartSpecs()
	}
	return &pngRenderer{config: config}
}

// Render writes one chart per configured ChartSpec, overwriting files left by earlier runs.
func (r *pngRenderer) Render(ctx context.Context, series domain.SyntheticSeries) ([]domain.ChartArtifact, error) {
	logger := zerolog.Ctx(ctx)

	if err := os.MkdirAll(r.config.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create chart directory: %w", err)
	}

	artifacts := make([]domain.ChartArtifact, 0, len(r.config.Specs))
	for _, spec := range r.config.Specs {
		s, ok := series.ByMetric(spec.Metric)
		if !ok {
			return nil, fmt.Errorf("no series for metric %q", spec.Metric)
		}

		artifact, err := r.renderOne(spec, s)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s chart: %w", spec.Metric, err)
		}
		logger.Debug().
			Str("metric", string(spec.Metric)).
			Str("path", artifact.Path).
			Msg("chart written")
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func (r *pngRenderer) renderOne(spec domain.ChartSpec, s domain.Series) (domain.ChartArtifact, error) {
	p, err := newLinePlot(spec, s)
	if err != nil {
		return domain.ChartArtifact{}, err
	}

	c := vgimg.NewWith(vgimg.UseWH(r.config.Width, r.config.Height), vgimg.UseDPI(r.config.DPI))
	p.Draw(draw.New(c))

	path := filepath.Join(r.config.Dir, spec.FileName)
	f, err := os.Create(path)
	if err != nil {
		return domain.ChartArtifact{}, err
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		return domain.ChartArtifact{}, err
	}
	if err := f.Close(); err != nil {
		return domain.ChartArtifact{}, err
	}

	bounds := c.Image().Bounds()
	return domain.ChartArtifact{
		Spec:   spec,
		Path:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

func newLinePlot(spec domain.ChartSpec, s domain.Series) (*plot.Plot, error) {
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("series %s has %d x values and %d y values", s.Metric, len(s.X), len(s.Y))
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.X.Tick.Marker = monthTicks(s.X)
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = spec.Color
	line.LineStyle.Width = vg.Points(2)
	points.GlyphStyle.Color = spec.Color
	points.GlyphStyle.Radius = vg.Points(3)
	points.GlyphStyle.Shape = glyphFor(spec.Marker)

	p.Add(line, points)
	return p, nil
}

func glyphFor(m domain.MarkerShape) draw.GlyphDrawer {
	switch m {
	case domain.MarkerSquare:
		return draw.BoxGlyph{}
	case domain.MarkerTriangle:
		return draw.TriangleGlyph{}
	default:
		return draw.CircleGlyph{}
	}
}

func monthTicks(xs []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(xs))
	for i, x := range xs {
		ticks[i] = plot.Tick{Value: x, Label: strconv.FormatFloat(x, 'f', -1, 64)}
	}
	return ticks
}

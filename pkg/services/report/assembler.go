package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/de-tools/atlas-report/pkg/adapters"
	"github.com/de-tools/atlas-report/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Assembler builds the report document from the input and the rendered charts.
type Assembler interface {
	Assemble(ctx context.Context, input *domain.AnalyticsInput, charts []domain.ChartArtifact) (*domain.ReportDocument, error)
}

type AssemblerConfig struct {
	PictureWidth float64 // inches
}

type assembler struct {
	narrative *Narrative
	config    AssemblerConfig
}

func NewAssembler(narrative *Narrative, config AssemblerConfig) Assembler {
	if config.PictureWidth <= 0 {
		config.PictureWidth = 5
	}
	return &assembler{narrative: narrative, config: config}
}

// Assemble lays out the report in its fixed order. A missing input key aborts assembly.
func (a *assembler) Assemble(
	ctx context.Context,
	input *domain.AnalyticsInput,
	charts []domain.ChartArtifact,
) (*domain.ReportDocument, error) {
	logger := zerolog.Ctx(ctx)
	doc := &domain.ReportDocument{}

	company, err := a.stringField(input.Company)
	if err != nil {
		return nil, err
	}
	project, err := a.stringField(input.ProjectName)
	if err != nil {
		return nil, err
	}
	doc.AddHeading(company, 0)
	doc.AddHeading(project, 1)
	doc.AddParagraph(a.narrative.Intro, domain.AlignJustify)
	doc.AddPageBreak()

	for _, section := range a.narrative.Sections {
		doc.AddHeading(section, 2)
		for i := 0; i < a.narrative.ParagraphsPerSection; i++ {
			doc.AddParagraph(a.narrative.Filler, domain.AlignJustify)
		}
		doc.AddPageBreak()
	}

	doc.AddHeading(a.narrative.VisualizationHeading, 2)
	doc.AddParagraph(a.narrative.VisualizationIntro, domain.AlignLeft)
	for _, chart := range charts {
		pic, err := a.loadPicture(chart.Path)
		if err != nil {
			return nil, err
		}
		doc.AddParagraph(chart.Spec.Caption, domain.AlignLeft)
		doc.AddPicture(pic)
	}
	doc.AddPageBreak()

	placeholder, err := findChart(charts, domain.MetricIncidents)
	if err != nil {
		return nil, err
	}
	for i := 1; i <= a.narrative.DashboardCount; i++ {
		pic, err := a.loadPicture(placeholder.Path)
		if err != nil {
			return nil, err
		}
		doc.AddHeading(fmt.Sprintf(a.narrative.DashboardHeading, i), 2)
		doc.AddParagraph(a.narrative.DashboardCaption, domain.AlignLeft)
		doc.AddPicture(pic)
		doc.AddPageBreak()
	}

	doc.AddHeading(a.narrative.MetricsHeading, 2)
	table := doc.AddTable(adapters.MetricsTableHeader())
	services, err := input.Services()
	if err != nil {
		return nil, err
	}
	for _, svc := range services {
		row, err := adapters.MapServiceRecordToMetricsRow(svc)
		if err != nil {
			return nil, err
		}
		table.AddRow(row)
	}
	doc.AddPageBreak()

	appendix, err := prettyJSON(input.Source)
	if err != nil {
		return nil, err
	}
	doc.AddHeading(a.narrative.AppendixHeading, 2)
	doc.AddPreformatted(appendix)

	logger.Debug().
		Int("blocks", len(doc.Blocks)).
		Int("services", len(services)).
		Msg("report assembled")

	return doc, nil
}

func (a *assembler) stringField(lookup func() (interface{}, error)) (string, error) {
	v, err := lookup()
	if err != nil {
		return "", err
	}
	return adapters.StringifyValue(v)
}

// loadPicture reads a PNG and scales it to the configured width.
func (a *assembler) loadPicture(path string) (*domain.Picture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", path, err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	if cfg.Width == 0 {
		return nil, fmt.Errorf("image %s has zero width", path)
	}

	width := int64(a.config.PictureWidth * domain.EMUPerInch)
	return &domain.Picture{
		Name:      filepath.Base(path),
		Path:      path,
		WidthEMU:  width,
		HeightEMU: width * int64(cfg.Height) / int64(cfg.Width),
	}, nil
}

func findChart(charts []domain.ChartArtifact, metric domain.Metric) (domain.ChartArtifact, error) {
	for _, c := range charts {
		if c.Spec.Metric == metric {
			return c, nil
		}
	}
	return domain.ChartArtifact{}, fmt.Errorf("no %s chart was rendered", metric)
}

// prettyJSON re-indents the raw input with two spaces, keeping key order and number literals.
// Non-ASCII characters are written as \u escapes.
func prettyJSON(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(source), "", "  "); err != nil {
		return "", fmt.Errorf("failed to format appendix: %w", err)
	}
	return escapeNonASCII(buf.String()), nil
}

// escapeNonASCII is only applied to valid JSON, where non-ASCII runes can only occur inside strings.
func escapeNonASCII(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r < 0x80 {
			sb.WriteRune(r)
			continue
		}
		for _, unit := range utf16.Encode([]rune{r}) {
			fmt.Fprintf(&sb, "\\u%04x", unit)
		}
	}
	return sb.String()
}

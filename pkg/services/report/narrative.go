package report

import (
	_ "embed"
	"fmt"

	"gopkg.in/ini.v1"
)

//go:embed narrative.ini
var defaultNarrative []byte

// Narrative is the fixed boilerplate placed around the data-driven parts of the report.
type Narrative struct {
	Intro                string
	Sections             []string
	ParagraphsPerSection int
	Filler               string
	VisualizationHeading string
	VisualizationIntro   string
	DashboardCount       int
	DashboardHeading     string
	DashboardCaption     string
	MetricsHeading       string
	AppendixHeading      string
}

// DefaultNarrative returns the catalog compiled into the binary.
func DefaultNarrative() (*Narrative, error) {
	return ParseNarrative(defaultNarrative)
}

// ParseNarrative reads a catalog in INI form. Repeated "name" keys in [sections] keep their order.
func ParseNarrative(source []byte) (*Narrative, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{AllowShadows: true}, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse narrative catalog: %w", err)
	}

	sections := cfg.Section("sections")
	paragraphs, err := sections.Key("paragraphs").Int()
	if err != nil {
		return nil, fmt.Errorf("invalid sections.paragraphs: %w", err)
	}
	dashboards := cfg.Section("dashboards")
	dashboardCount, err := dashboards.Key("count").Int()
	if err != nil {
		return nil, fmt.Errorf("invalid dashboards.count: %w", err)
	}

	return &Narrative{
		Intro:                cfg.Section("report").Key("intro").String(),
		Sections:             sections.Key("name").ValueWithShadows(),
		ParagraphsPerSection: paragraphs,
		Filler:               sections.Key("filler").String(),
		VisualizationHeading: cfg.Section("visualizations").Key("heading").String(),
		VisualizationIntro:   cfg.Section("visualizations").Key("intro").String(),
		DashboardCount:       dashboardCount,
		DashboardHeading:     dashboards.Key("heading").String(),
		DashboardCaption:     dashboards.Key("caption").String(),
		MetricsHeading:       cfg.Section("metrics").Key("heading").String(),
		AppendixHeading:      cfg.Section("appendix").Key("heading").String(),
	}, nil
}

package domain

import "image/color"

// MarkerShape is the glyph drawn at every sample of a chart line.
type MarkerShape string

const (
	MarkerCircle   MarkerShape = "circle"
	MarkerSquare   MarkerShape = "square"
	MarkerTriangle MarkerShape = "triangle"
)

type Metric string

const (
	MetricIncidents   Metric = "incidents"
	MetricLatency     Metric = "latency"
	MetricThreatScore Metric = "threat_score"
)

// MonthsPerSeries is the number of x-axis points of every synthetic series.
const MonthsPerSeries = 12

// Series is one ordered sequence of monthly samples.
type Series struct {
	Metric Metric
	X      []float64
	Y      []float64
}

// SyntheticSeries holds the three generated trends. None of it is derived from the input.
type SyntheticSeries struct {
	Incidents   Series
	Latency     Series
	ThreatScore Series
}

// ChartSpec describes how a single metric is drawn.
type ChartSpec struct {
	Metric   Metric
	Title    string
	Caption  string
	XLabel   string
	YLabel   string
	Marker   MarkerShape
	Color    color.RGBA
	FileName string
}

// ChartArtifact is a chart rendered to disk.
type ChartArtifact struct {
	Spec   ChartSpec
	Path   string
	Width  int // pixels
	Height int // pixels
}

var (
	ColorBlue  = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	ColorRed   = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	ColorGreen = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
)

// DefaultChartSpecs returns the incidents, latency and threat score charts in report order.
func DefaultChartSpecs() []ChartSpec {
	return []ChartSpec{
		{
			Metric:   MetricIncidents,
			Title:    "Monthly Security Incidents Detected",
			Caption:  "Monthly Security Incidents:",
			XLabel:   "Month",
			YLabel:   "Incidents",
			Marker:   MarkerCircle,
			Color:    ColorBlue,
			FileName: "incidents.png",
		},
		{
			Metric:   MetricLatency,
			Title:    "Average Model Latency (ms)",
			Caption:  "Average Model Latency (ms):",
			XLabel:   "Month",
			YLabel:   "Latency (ms)",
			Marker:   MarkerSquare,
			Color:    ColorRed,
			FileName: "latency.png",
		},
		{
			Metric:   MetricThreatScore,
			Title:    "Threat Detection Confidence Score",
			Caption:  "Threat Detection Confidence Score:",
			XLabel:   "Month",
			YLabel:   "Score",
			Marker:   MarkerTriangle,
			Color:    ColorGreen,
			FileName: "threat_score.png",
		},
	}
}

// ByMetric returns the series for m, or false for an unknown metric.
func (s SyntheticSeries) ByMetric(m Metric) (Series, bool) {
	switch m {
	case MetricIncidents:
		return s.Incidents, true
	case MetricLatency:
		return s.Latency, true
	case MetricThreatScore:
		return s.ThreatScore, true
	}
	return Series{}, false
}

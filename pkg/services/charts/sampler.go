package charts

import (
	"math/rand/v2"

	"github.com/de-tools/atlas-report/pkg/models/domain"
)

// Sample ranges. Integer bounds are inclusive; the threat score upper bound is exclusive.
const (
	IncidentsMin   = 900
	IncidentsMax   = 1800
	LatencyMin     = 120
	LatencyMax     = 220
	ThreatScoreMin = 0.5
	ThreatScoreMax = 0.95
)

// Sampler produces the synthetic monthly series shown in the report.
type Sampler struct {
	rnd *rand.Rand
}

// NewSampler returns a sampler seeded with seed, or with a random seed when seed is zero.
func NewSampler(seed uint64) *Sampler {
	if seed == 0 {
		return &Sampler{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &Sampler{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (s *Sampler) Sample() domain.SyntheticSeries {
	months := Months()

	incidents := make([]float64, len(months))
	latencies := make([]float64, len(months))
	scores := make([]float64, len(months))
	for i := range months {
		incidents[i] = float64(s.intBetween(IncidentsMin, IncidentsMax))
	}
	for i := range months {
		latencies[i] = float64(s.intBetween(LatencyMin, LatencyMax))
	}
	for i := range months {
		scores[i] = ThreatScoreMin + (ThreatScoreMax-ThreatScoreMin)*s.rnd.Float64()
	}

	return domain.SyntheticSeries{
		Incidents:   domain.Series{Metric: domain.MetricIncidents, X: months, Y: incidents},
		Latency:     domain.Series{Metric: domain.MetricLatency, X: months, Y: latencies},
		ThreatScore: domain.Series{Metric: domain.MetricThreatScore, X: months, Y: scores},
	}
}

func (s *Sampler) intBetween(lo, hi int) int {
	return lo + s.rnd.IntN(hi-lo+1)
}

// Months returns the fixed x axis 1..12.
func Months() []float64 {
	months := make([]float64, domain.MonthsPerSeries)
	for i := range months {
		months[i] = float64(i + 1)
	}
	return months
}

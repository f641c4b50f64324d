package domain

import "time"

// RunSummary describes the artifacts produced by one report run.
type RunSummary struct {
	InputPath    string
	OutputPath   string
	Charts       []ChartArtifact
	ServiceCount int
	StartedAt    time.Time
	Duration     time.Duration
}

package export

import (
	"bytes"
	"testing"

	"github.com/de-tools/atlas-report/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle_ListsEveryArtifact(t *testing.T) {
	// Given
	var out bytes.Buffer
	summary := &domain.RunSummary{
		InputPath:    "in.json",
		OutputPath:   "out.docx",
		ServiceCount: 2,
		Charts: []domain.ChartArtifact{
			{Spec: domain.ChartSpec{Metric: domain.MetricIncidents}, Path: "incidents.png", Width: 600, Height: 400},
			{Spec: domain.ChartSpec{Metric: domain.MetricLatency}, Path: "latency.png", Width: 600, Height: 400},
		},
	}

	// When
	err := NewReporter(&out).Handle(summary)

	// Then
	require.NoError(t, err)
	text := out.String()
	assert.Contains(t, text, "Report generated successfully: out.docx")
	assert.Contains(t, text, "Services: 2")
	assert.Contains(t, text, "| incidents ")
	assert.Contains(t, text, "| latency ")
	assert.Contains(t, text, "| report ")
	assert.Contains(t, text, "600x400")
}

package adapters

import (
	"encoding/json"
	"testing"

	"github.com/de-tools/atlas-report/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapServiceRecordToMetricsRow_VerbatimValues(t *testing.T) {
	svc := domain.ServiceRecord{Fields: map[string]interface{}{
		"name":                "svcA",
		"requests_per_day":    json.Number("100"),
		"avg_latency_ms":      json.Number("20"),
		"p99_latency_ms":      json.Number("50.50"),
		"false_positive_rate": json.Number("0.01"),
	}}

	row, err := MapServiceRecordToMetricsRow(svc)

	require.NoError(t, err)
	assert.Equal(t, []string{"svcA", "100", "20", "50.50", "0.01"}, row)
}

func TestMapServiceRecordToMetricsRow_MissingKey(t *testing.T) {
	svc := domain.ServiceRecord{Index: 3, Fields: map[string]interface{}{"name": "svcA"}}

	_, err := MapServiceRecordToMetricsRow(svc)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingField)
	assert.Contains(t, err.Error(), "services[3].requests_per_day")
}

func TestStringifyValue_RendersEveryValue(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"string", "svcA", "svcA"},
		{"integer literal", json.Number("100"), "100"},
		{"trailing zero kept", json.Number("50.50"), "50.50"},
		{"exponent kept", json.Number("1e-5"), "1e-5"},
		{"true", true, "True"},
		{"false", false, "False"},
		{"null", nil, "None"},
		{"object", map[string]interface{}{"b": json.Number("2"), "a": json.Number("1")}, `{"a":1,"b":2}`},
		{"array", []interface{}{"x", json.Number("3")}, `["x",3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StringifyValue(tt.value)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMapServiceRecordToMetricsRow_ContainerValues_DoNotFail(t *testing.T) {
	svc := domain.ServiceRecord{Fields: map[string]interface{}{
		"name":                []interface{}{"x"},
		"requests_per_day":    map[string]interface{}{"a": json.Number("1")},
		"avg_latency_ms":      true,
		"p99_latency_ms":      nil,
		"false_positive_rate": json.Number("1e-5"),
	}}

	row, err := MapServiceRecordToMetricsRow(svc)

	require.NoError(t, err)
	assert.Equal(t, []string{`["x"]`, `{"a":1}`, "True", "None", "1e-5"}, row)
}

func TestMetricsTableHeader(t *testing.T) {
	assert.Equal(t,
		[]string{"Service", "Requests/Day", "Avg Latency(ms)", "p99 Latency(ms)", "False Positive Rate"},
		MetricsTableHeader())
}

package adapters

import (
	"fmt"

	"github.com/de-tools/atlas-report/pkg/models/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"
)

// MetricsColumns maps each metrics table header to the service key it is read from.
var MetricsColumns = []struct {
	Header string
	Key    string
}{
	{"Service", "name"},
	{"Requests/Day", "requests_per_day"},
	{"Avg Latency(ms)", "avg_latency_ms"},
	{"p99 Latency(ms)", "p99_latency_ms"},
	{"False Positive Rate", "false_positive_rate"},
}

func MetricsTableHeader() []string {
	header := make([]string, len(MetricsColumns))
	for i, c := range MetricsColumns {
		header[i] = c.Header
	}
	return header
}

// MapServiceRecordToMetricsRow stringifies the service values without any rounding.
// Numbers keep their JSON literal text.
func MapServiceRecordToMetricsRow(svc domain.ServiceRecord) ([]string, error) {
	row := make([]string, len(MetricsColumns))
	for i, c := range MetricsColumns {
		v, err := svc.Value(c.Key)
		if err != nil {
			return nil, err
		}
		s, err := StringifyValue(v)
		if err != nil {
			return nil, fmt.Errorf("services[%d].%s: %w", svc.Index, c.Key, err)
		}
		row[i] = s
	}
	return row, nil
}

var compactJSON = jsoniter.Config{SortMapKeys: true, UseNumber: true}.Froze()

// StringifyValue renders a decoded JSON value as cell text. Numbers keep their literal,
// booleans and null print as True, False and None, and objects or arrays print as compact JSON.
func StringifyValue(v interface{}) (string, error) {
	switch val := v.(type) {
	case nil:
		return "None", nil
	case bool:
		if val {
			return "True", nil
		}
		return "False", nil
	case map[string]interface{}, []interface{}:
		return compactJSON.MarshalToString(val)
	}
	return cast.ToStringE(v)
}

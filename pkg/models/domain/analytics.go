package domain

import (
	"errors"
	"fmt"
)

// ErrMissingField is matched by every MissingFieldError.
var ErrMissingField = errors.New("missing field")

// MissingFieldError reports a key that the report needs but the input does not carry.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q in analytics input", e.Path)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// AnalyticsInput is the parsed analytics summary. Keys are looked up lazily so that a
// missing key surfaces at the point of use, not at load time.
type AnalyticsInput struct {
	Fields map[string]interface{}
	Source []byte
}

// ServiceRecord is a single entry of the "services" array.
type ServiceRecord struct {
	Index  int
	Fields map[string]interface{}
}

func (a *AnalyticsInput) Company() (interface{}, error) {
	return a.lookup("company")
}

func (a *AnalyticsInput) ProjectName() (interface{}, error) {
	return a.lookup("project_name")
}

// Services returns the service records in input order.
func (a *AnalyticsInput) Services() ([]ServiceRecord, error) {
	v, err := a.lookup("services")
	if err != nil {
		return nil, err
	}

	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("field %q is %T, expected an array", "services", v)
	}

	records := make([]ServiceRecord, 0, len(items))
	for i, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("services[%d] is %T, expected an object", i, item)
		}
		records = append(records, ServiceRecord{Index: i, Fields: fields})
	}
	return records, nil
}

func (a *AnalyticsInput) lookup(key string) (interface{}, error) {
	v, ok := a.Fields[key]
	if !ok {
		return nil, &MissingFieldError{Path: key}
	}
	return v, nil
}

// Value returns the raw value stored under key.
func (s ServiceRecord) Value(key string) (interface{}, error) {
	v, ok := s.Fields[key]
	if !ok {
		return nil, &MissingFieldError{Path: fmt.Sprintf("services[%d].%s", s.Index, key)}
	}
	return v, nil
}

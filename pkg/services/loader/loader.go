package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/atlas-report/pkg/models/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

// ErrInputNotFound is returned when the analytics file does not exist.
var ErrInputNotFound = errors.New("analytics input not found")

// json keeps number literals as json.Number and rejects bytes left after the top-level value.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Loader reads an analytics summary from disk.
type Loader interface {
	Load(ctx context.Context, path string) (*domain.AnalyticsInput, error)
}

type fileLoader struct{}

func NewLoader() Loader {
	return &fileLoader{}
}

// Load checks that path exists and parses it. Keys are not validated here.
func (l *fileLoader) Load(ctx context.Context, path string) (*domain.AnalyticsInput, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s not found in current directory!", ErrInputNotFound, filepath.Base(path))
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	input, err := Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Int("bytes", len(source)).
		Msg("analytics input loaded")

	return input, nil
}

// Parse decodes source into an AnalyticsInput. Numbers keep their JSON literal text.
func Parse(source []byte) (*domain.AnalyticsInput, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(source, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("analytics input must be a JSON object")
	}

	return &domain.AnalyticsInput{
		Fields: fields,
		Source: source,
	}, nil
}

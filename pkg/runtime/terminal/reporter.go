package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/atlas-report/pkg/models/domain"
)

// Reporter prints the one-line completion message of a report run.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(summary *domain.RunSummary) error {
	tmpl := "Report generated successfully: {{.OutputPath}}\n"

	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summary)
}

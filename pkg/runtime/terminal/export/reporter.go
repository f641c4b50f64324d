package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/atlas-report/pkg/models/domain"
)

type TableConfig struct {
	ArtifactWidth int
	PathWidth     int
	SizeWidth     int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ArtifactWidth: 14,
		PathWidth:     48,
		SizeWidth:     12,
	}
}

// Reporter prints every artifact of a run as a table.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(summary *domain.RunSummary) error {
	funcMap := template.FuncMap{
		"formatRow": func(artifact string, path string, size interface{}) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*v |",
				c.config.ArtifactWidth, artifact,
				c.config.PathWidth, path,
				c.config.SizeWidth, size)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.ArtifactWidth+2),
				strings.Repeat("-", c.config.PathWidth+2),
				strings.Repeat("-", c.config.SizeWidth+2))
		},
		"pixels": func(a domain.ChartArtifact) string {
			return fmt.Sprintf("%dx%d", a.Width, a.Height)
		},
	}

	tmpl := `
Report generated successfully: {{.OutputPath}}

Input: {{.InputPath}}
Services: {{.ServiceCount}}
Duration: {{.Duration}}

{{separator}}
{{formatRow "Artifact" "Path" "Size"}}
{{separator}}
{{range .Charts}}{{formatRow (printf "%s" .Spec.Metric) .Path (pixels .)}}
{{end}}{{formatRow "report" .OutputPath "-"}}
{{separator}}
`

	t, err := template.New("summary").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summary)
}

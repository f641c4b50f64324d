package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/atlas-report/pkg/services/report"
	"github.com/spf13/cobra"
)

func NewSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the narrative sections included in every report",
		Args:  cobra.NoArgs,
		RunE:  runSections,
	}
}

func runSections(cmd *cobra.Command, _ []string) error {
	narrative, err := report.DefaultNarrative()
	if err != nil {
		return err
	}

	if len(narrative.Sections) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No narrative sections configured")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Narrative sections (%d paragraphs each):\n%s\n",
		narrative.ParagraphsPerSection,
		strings.Join(narrative.Sections, "\n"))

	return nil
}

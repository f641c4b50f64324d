package terminal

import (
	"io"
	"os"

	"github.com/de-tools/atlas-report/pkg/runtime/terminal/export"
	"github.com/de-tools/atlas-report/pkg/terminal/commands"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *Reporter
	exporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// Args replaces os.Args[1:] when set.
	Args []string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: NewReporter(opts.Output),
		exporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	if opts.Args != nil {
		cli.rootCmd.SetArgs(opts.Args)
	}
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := commands.NewGenerateCmd(cli.reporter, cli.exporter)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.AddCommand(commands.NewSectionsCmd())

	return cmd
}

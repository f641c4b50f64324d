package commands

import (
	"fmt"

	"github.com/de-tools/atlas-report/pkg/models/domain"
	"github.com/de-tools/atlas-report/pkg/services/config"
	"github.com/de-tools/atlas-report/pkg/services/workflow"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// SummaryHandler presents the result of a report run.
type SummaryHandler interface {
	Handle(summary *domain.RunSummary) error
}

type GenerateCmd struct {
	profilePath string
	envFile     string
	summary     bool
	viper       *viper.Viper
	reporter    SummaryHandler
	exporter    SummaryHandler
}

func NewGenerateCmd(reporter, exporter SummaryHandler) *cobra.Command {
	gc := &GenerateCmd{
		viper:    config.NewViper(),
		reporter: reporter,
		exporter: exporter,
	}
	cmd := &cobra.Command{
		Use:   "atlas-report",
		Short: "Generate the styled analytics report",
		Args:  cobra.NoArgs,
		RunE:  gc.run,
	}

	defaults := domain.DefaultSettings()
	cmd.Flags().StringVar(&gc.profilePath, "config", "", "Path to an optional configuration file")
	cmd.Flags().StringVar(&gc.envFile, "env-file", ".env", "Path to an optional dotenv file")
	cmd.Flags().BoolVar(&gc.summary, "summary", false, "Print a table of all generated artifacts")
	cmd.Flags().String("input", defaults.InputPath, "Analytics JSON file")
	cmd.Flags().String("output", defaults.OutputPath, "Report document to write")
	cmd.Flags().String("charts-dir", defaults.ChartsDir, "Directory for the chart images")
	cmd.Flags().Uint64("seed", defaults.Seed, "Seed for the synthetic chart data (0 picks a random seed)")
	cmd.Flags().String("log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")

	for key, flag := range map[string]string{
		"input":      "input",
		"output":     "output",
		"charts_dir": "charts-dir",
		"seed":       "seed",
		"log_level":  "log-level",
	} {
		_ = gc.viper.BindPFlag(key, cmd.Flags().Lookup(flag))
	}

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(gc.envFile); err != nil {
		return err
	}

	settings, err := config.LoadConfig(gc.viper, gc.profilePath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}
	logger := zerolog.New(cmd.ErrOrStderr()).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	runner, err := workflow.NewDefaultRunner(*settings)
	if err != nil {
		return fmt.Errorf("failed to create report runner: %w", err)
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	if gc.summary {
		return gc.exporter.Handle(summary)
	}
	return gc.reporter.Handle(summary)
}

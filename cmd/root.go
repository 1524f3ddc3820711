package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kyleking/schema-wizard/internal/config"
	"github.com/kyleking/schema-wizard/internal/logging"
)

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "schema-wizard",
	Short: "Suggest model input/output schemas from a problem description",
	Long: `schema-wizard turns a free-text description of a prediction problem into
a suggested input/output JSON Schema pair for a training pipeline. It matches
the description against a catalog of domain patterns (fraud detection, churn,
sentiment, pricing, and more), lets you validate hand-edited schemas, and can
persist the result as a project and trigger training.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			logging.SetupFallbackLogger()
			return err
		}

		loaded.ExpandAllPaths()
		cfg = loaded

		if err := logging.InitializeLogger(cfg.Logging); err != nil {
			logging.SetupFallbackLogger()
		}

		return nil
	},
}

func Execute() error {
	ctx := context.Background()
	return rootCmd.ExecuteContext(ctx)
}

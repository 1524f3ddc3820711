package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyleking/schema-wizard/internal/errors"
)

var configJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the active configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configJSON, "json", false, "Print configuration as JSON")

	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if cfg == nil {
		return errors.New(errors.ErrTypeConfig, "configuration not loaded")
	}

	if configJSON {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		return nil
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Database:")
	fmt.Fprintf(out, "  Path: %s\n", cfg.Database.Path)
	fmt.Fprintf(out, "  Max Connections: %d\n", cfg.Database.MaxConnections)
	fmt.Fprintf(out, "  Query Timeout: %s\n", cfg.Database.QueryTimeout)

	fmt.Fprintln(out, "\nLogging:")
	fmt.Fprintf(out, "  Level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  Format: %s\n", cfg.Logging.Format)
	fmt.Fprintf(out, "  Output: %s\n", cfg.Logging.Output)

	if cfg.Logging.Output == "file" {
		fmt.Fprintf(out, "  File: %s\n", cfg.Logging.File)
	}

	fmt.Fprintln(out, "\nTrainer:")
	fmt.Fprintf(out, "  Delay: %s\n", cfg.Trainer.Delay)
	fmt.Fprintf(out, "  Poll Interval: %s\n", cfg.Trainer.PollInterval)

	return nil
}

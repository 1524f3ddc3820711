package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kyleking/schema-wizard/internal/errors"
	"github.com/kyleking/schema-wizard/internal/storage"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored wizard projects",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of projects to show")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	repo, err := storage.NewDuckDBRepository(cfg.Database.Path)
	if err != nil {
		return errors.Wrap(err, errors.ErrTypeDatabase, "failed to open project store")
	}
	defer repo.Close()

	if err := repo.Initialize(ctx); err != nil {
		return errors.Wrap(err, errors.ErrTypeDatabase, "failed to initialize project store")
	}

	projects, err := repo.ListProjects(ctx, listLimit, 0)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No projects found. Create one with 'schema-wizard create'.")
		return nil
	}

	for _, p := range projects {
		description := p.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s %-4s  %s\n",
			p.ID, p.Status, p.Source.Type, description)
	}

	return nil
}

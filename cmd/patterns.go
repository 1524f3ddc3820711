package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kyleking/schema-wizard/internal/suggest"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the domain patterns in the schema catalog",
	Long: `Show every catalog entry with its trigger keywords and priority weight.
Entries are listed in declaration order, which is also the tie-break order
when two patterns score equally.`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, _ []string) error {
	for i, pattern := range suggest.Patterns() {
		fmt.Fprintf(cmd.OutOrStdout(), "%2d. %-20s priority %2d  keywords: %s\n",
			i+1, pattern.Name, pattern.Priority, strings.Join(pattern.Keywords, ", "))
	}

	return nil
}

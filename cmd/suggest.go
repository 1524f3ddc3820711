package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kyleking/schema-wizard/internal/logging"
	"github.com/kyleking/schema-wizard/internal/schema"
	"github.com/kyleking/schema-wizard/internal/suggest"
)

var suggestExplain bool

var suggestCmd = &cobra.Command{
	Use:   "suggest <problem-description>",
	Short: "Suggest an input/output schema pair for a prediction problem",
	Long: `Match a free-text problem description against the pattern catalog and print
the suggested input and output JSON Schemas. Falls back to a generic schema
pair when nothing matches.

Examples:
  schema-wizard suggest "identify which company emails are fraudulent"
  schema-wizard suggest --explain "predict customer churn from usage data"`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestExplain, "explain", false,
		"Show which pattern matched and its score")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	description := args[0]
	engine := suggest.NewEngine()

	if logger := logging.GetLogger(); logger != nil {
		logger.WithField("description_len", len(description)).Debug("suggesting schemas")
	}

	if suggestExplain {
		if match, ok := engine.Best(description); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Pattern: %s (matched %d keyword(s), score %d)\n\n",
				match.Pattern.Name, match.MatchCount, match.Score)
		} else if strings.TrimSpace(description) == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Pattern: default (empty description)")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Pattern: default (no keyword matched)")
		}
	}

	set := engine.Suggest(description)

	fmt.Fprintln(cmd.OutOrStdout(), "Input schema:")
	fmt.Fprintln(cmd.OutOrStdout(), schema.Format(set.Input))
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), "Output schema:")
	fmt.Fprintln(cmd.OutOrStdout(), schema.Format(set.Output))

	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kyleking/schema-wizard/internal/errors"
	"github.com/kyleking/schema-wizard/internal/schema"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate [schema-text]",
	Short: "Check that edited schema text is a syntactically valid JSON object",
	Long: `Validate schema text the way the wizard's editor does: empty input counts
as "no schema yet", JSON syntax errors are reported verbatim, and JSON that
is not an object (an array, number, string, or null) is rejected.

Examples:
  schema-wizard validate '{"type": "object"}'
  schema-wizard validate --file edited-schema.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFile, "file", "",
		"Read schema text from a file instead of the argument")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	var text string

	switch {
	case validateFile != "":
		data, err := os.ReadFile(validateFile)
		if err != nil {
			return errors.Wrapf(err, errors.ErrTypeValidation,
				"failed to read schema file %s", validateFile)
		}

		text = string(data)
	case len(args) == 1:
		text = args[0]
	}

	result := schema.Validate(text)
	if !result.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s\n", result.Error)
		return errors.New(errors.ErrTypeValidation, result.Error)
	}

	if len(result.Parsed) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "valid (no schema supplied)")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	fmt.Fprintln(cmd.OutOrStdout(), schema.Format(result.Parsed))

	return nil
}

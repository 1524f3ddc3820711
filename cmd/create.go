package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/kyleking/schema-wizard/internal/datasource"
	"github.com/kyleking/schema-wizard/internal/errors"
	"github.com/kyleking/schema-wizard/internal/logging"
	"github.com/kyleking/schema-wizard/internal/schema"
	"github.com/kyleking/schema-wizard/internal/storage"
	"github.com/kyleking/schema-wizard/internal/suggest"
	"github.com/kyleking/schema-wizard/internal/trainer"
)

var (
	createSourceType   string
	createCSVFile      string
	createS3Bucket     string
	createS3Region     string
	createS3AccessKey  string
	createS3SecretKey  string
	createInputSchema  string
	createOutputSchema string
	createNoWait       bool
)

var createCmd = &cobra.Command{
	Use:   "create <problem-description>",
	Short: "Create a project from a description and trigger training",
	Long: `Suggest schemas for the description, persist the result as a project with
the chosen data source, and hand it to the training backend. Hand-edited
schema files supplied with --input-schema/--output-schema replace the
suggested ones after validation.

Examples:
  schema-wizard create "detect fraudulent emails" --source csv --csv-file emails.csv
  schema-wizard create "predict churn" --source s3 --s3-bucket s3://data --s3-region us-east-1 \
    --s3-access-key KEY --s3-secret-key SECRET`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createSourceType, "source", "csv", "Data source type: csv or s3")
	createCmd.Flags().StringVar(&createCSVFile, "csv-file", "", "CSV file backing the project")
	createCmd.Flags().StringVar(&createS3Bucket, "s3-bucket", "", "S3 bucket URL")
	createCmd.Flags().StringVar(&createS3Region, "s3-region", "", "S3 region")
	createCmd.Flags().StringVar(&createS3AccessKey, "s3-access-key", "", "S3 access key ID")
	createCmd.Flags().StringVar(&createS3SecretKey, "s3-secret-key", "", "S3 secret access key")
	createCmd.Flags().StringVar(&createInputSchema, "input-schema", "",
		"File with a hand-edited input schema to use instead of the suggestion")
	createCmd.Flags().StringVar(&createOutputSchema, "output-schema", "",
		"File with a hand-edited output schema to use instead of the suggestion")
	createCmd.Flags().BoolVar(&createNoWait, "no-wait", false,
		"Trigger training and return without waiting for it to finish")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	description := args[0]

	source, err := buildSource()
	if err != nil {
		return err
	}

	set := suggest.NewEngine().Suggest(description)
	inputText := schema.EditorText(set.Input)
	outputText := schema.EditorText(set.Output)

	// Edited schemas go through the same validation the editor applies.
	if createInputSchema != "" {
		inputText, err = loadEditedSchema(createInputSchema)
		if err != nil {
			return err
		}
	}

	if createOutputSchema != "" {
		outputText, err = loadEditedSchema(createOutputSchema)
		if err != nil {
			return err
		}
	}

	repo, err := storage.NewDuckDBRepository(cfg.Database.Path)
	if err != nil {
		return errors.Wrap(err, errors.ErrTypeDatabase, "failed to open project store")
	}
	defer repo.Close()

	if err := repo.Initialize(ctx); err != nil {
		return errors.Wrap(err, errors.ErrTypeDatabase, "failed to initialize project store")
	}

	project, err := repo.CreateProject(ctx, storage.Project{
		Description:  description,
		Source:       source,
		InputSchema:  inputText,
		OutputSchema: outputText,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (status: %s)\n", project.ID, project.Status)

	tr := trainer.New(repo, cfg.TrainerDelay(), cfg.TrainerPollInterval(), logging.GetLogger())
	tr.Start(ctx, project.ID)

	if createNoWait {
		return nil
	}

	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	spin.Suffix = " training..."
	spin.Start()

	status, err := tr.Watch(ctx, project.ID)

	spin.Stop()

	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Training %s\n", status)

	if status == storage.StatusFailed {
		return errors.Newf(errors.ErrTypeTraining, "training failed for project %s", project.ID)
	}

	return nil
}

func buildSource() (datasource.Descriptor, error) {
	var source datasource.Descriptor

	switch datasource.Type(createSourceType) {
	case datasource.TypeCSV:
		source = datasource.Descriptor{
			Type:     datasource.TypeCSV,
			FileName: createCSVFile,
		}

		if createCSVFile != "" {
			if info, err := os.Stat(createCSVFile); err == nil {
				source.FileSize = info.Size()
			}
		}
	case datasource.TypeS3:
		source = datasource.Descriptor{
			Type:            datasource.TypeS3,
			BucketURL:       createS3Bucket,
			Region:          createS3Region,
			AccessKeyID:     createS3AccessKey,
			SecretAccessKey: createS3SecretKey,
		}
	default:
		return source, errors.Newf(errors.ErrTypeDataSource,
			"unknown data source type: %q", createSourceType)
	}

	return source, source.Validate()
}

func loadEditedSchema(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrTypeValidation,
			"failed to read schema file %s", path)
	}

	result := schema.Validate(string(data))
	if !result.Valid {
		return "", errors.Newf(errors.ErrTypeValidation,
			"schema file %s is invalid: %s", path, result.Error)
	}

	return schema.EditorText(result.Parsed), nil
}

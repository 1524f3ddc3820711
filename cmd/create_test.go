package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyleking/schema-wizard/internal/datasource"
	"github.com/kyleking/schema-wizard/internal/errors"
)

func resetCreateFlags(t *testing.T) {
	t.Helper()

	createSourceType = "csv"
	createCSVFile = ""
	createS3Bucket = ""
	createS3Region = ""
	createS3AccessKey = ""
	createS3SecretKey = ""

	t.Cleanup(func() {
		createSourceType = "csv"
		createCSVFile = ""
		createS3Bucket = ""
		createS3Region = ""
		createS3AccessKey = ""
		createS3SecretKey = ""
	})
}

func TestBuildSourceCSV(t *testing.T) {
	resetCreateFlags(t)

	csvPath := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,b,c\n1,2,3\n"), 0600))

	createSourceType = "csv"
	createCSVFile = csvPath

	source, err := buildSource()
	require.NoError(t, err)

	assert.Equal(t, datasource.TypeCSV, source.Type)
	assert.Equal(t, csvPath, source.FileName)
	assert.Equal(t, int64(12), source.FileSize)
}

func TestBuildSourceCSVMissingFile(t *testing.T) {
	resetCreateFlags(t)

	createSourceType = "csv"
	createCSVFile = ""

	_, err := buildSource()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeDataSource))
}

func TestBuildSourceS3(t *testing.T) {
	resetCreateFlags(t)

	createSourceType = "s3"
	createS3Bucket = "s3://models/training"
	createS3Region = "us-east-1"
	createS3AccessKey = "key"
	createS3SecretKey = "secret"

	source, err := buildSource()
	require.NoError(t, err)

	assert.Equal(t, datasource.TypeS3, source.Type)
	assert.Equal(t, "s3://models/training", source.BucketURL)
}

func TestBuildSourceUnknownType(t *testing.T) {
	resetCreateFlags(t)

	createSourceType = "gopher"

	_, err := buildSource()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeDataSource))
}

func TestLoadEditedSchema(t *testing.T) {
	dir := t.TempDir()

	validPath := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(validPath, []byte(`{"type": "object"}`), 0600))

	text, err := loadEditedSchema(validPath)
	require.NoError(t, err)
	assert.Contains(t, text, `"type": "object"`)

	invalidPath := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalidPath, []byte("[1,2,3]"), 0600))

	_, err = loadEditedSchema(invalidPath)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeValidation))

	_, err = loadEditedSchema(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

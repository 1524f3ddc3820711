// Package datasource defines the data-source descriptors attached to wizard
// projects. Descriptors are opaque to the schema engine; only their shape is
// checked here.
package datasource

import "github.com/kyleking/schema-wizard/internal/errors"

// Type identifies the kind of data source backing a project.
type Type string

const (
	TypeCSV Type = "csv"
	TypeS3  Type = "s3"
)

// Descriptor describes where the training data lives. Exactly the fields
// for the declared Type are meaningful; the rest stay zero.
type Descriptor struct {
	Type Type `json:"type"`

	// csv
	FileName string `json:"fileName,omitempty"`
	FileSize int64  `json:"fileSize,omitempty"`

	// s3
	BucketURL       string `json:"bucketUrl,omitempty"`
	Region          string `json:"region,omitempty"`
	AccessKeyID     string `json:"accessKeyId,omitempty"`
	SecretAccessKey string `json:"secretAccessKey,omitempty"`
}

// Validate checks that the descriptor declares a known type and carries the
// fields that type requires. Shape-only: no network or file access.
func (d Descriptor) Validate() error {
	switch d.Type {
	case TypeCSV:
		if d.FileName == "" {
			return errors.NewDataSourceError("csv source requires a file name", "fileName")
		}

		if d.FileSize < 0 {
			return errors.NewDataSourceError("csv file size cannot be negative", "fileSize")
		}
	case TypeS3:
		if d.BucketURL == "" {
			return errors.NewDataSourceError("s3 source requires a bucket URL", "bucketUrl")
		}

		if d.Region == "" {
			return errors.NewDataSourceError("s3 source requires a region", "region")
		}

		if d.AccessKeyID == "" || d.SecretAccessKey == "" {
			return errors.NewDataSourceError("s3 source requires credentials", "accessKeyId")
		}
	default:
		return errors.Newf(errors.ErrTypeDataSource, "unknown data source type: %q", d.Type)
	}

	return nil
}

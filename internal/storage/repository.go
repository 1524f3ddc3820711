// Package storage persists wizard projects: the problem description, the
// chosen data source, and the suggested schema pair, plus the training
// status maintained by the trainer.
package storage

import (
	"context"
	"time"

	"github.com/kyleking/schema-wizard/internal/datasource"
)

// Status tracks a project's training lifecycle
type Status string

const (
	StatusTraining  Status = "training"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Project represents a persisted wizard result
type Project struct {
	ID           string                `json:"id"`
	Description  string                `json:"description"`
	Source       datasource.Descriptor `json:"source"`
	InputSchema  string                `json:"input_schema"`
	OutputSchema string                `json:"output_schema"`
	Status       Status                `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// Repository defines the interface for project persistence
type Repository interface {
	Initialize(ctx context.Context) error
	CreateProject(ctx context.Context, p Project) (*Project, error)
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context, limit, offset int) ([]Project, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Clear(ctx context.Context) error
	Close() error
}

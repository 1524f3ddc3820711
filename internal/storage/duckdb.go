package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb" // DuckDB driver

	"github.com/kyleking/schema-wizard/internal/datasource"
	"github.com/kyleking/schema-wizard/internal/errors"
)

// DuckDBRepository implements the Repository interface using DuckDB
type DuckDBRepository struct {
	db   *sql.DB
	path string
}

// NewDuckDBRepository creates a new DuckDB repository with connection pooling
func NewDuckDBRepository(dbPath string) (*DuckDBRepository, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DuckDBRepository{db: db, path: dbPath}, nil
}

// Initialize creates the database schema using migrations
func (r *DuckDBRepository) Initialize(ctx context.Context) error {
	return NewMigrationManager(r.db).MigrateUp(ctx)
}

// CreateProject stores a new project and returns it with its generated
// identifier and an initial status of "training".
func (r *DuckDBRepository) CreateProject(ctx context.Context, p Project) (*Project, error) {
	if err := p.Source.Validate(); err != nil {
		return nil, err
	}

	sourceJSON, err := json.Marshal(p.Source)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeInternal, "failed to encode data source")
	}

	now := time.Now()
	p.ID = uuid.New().String()
	p.Status = StatusTraining
	p.CreatedAt = now
	p.UpdatedAt = now

	insertSQL := `
	INSERT INTO projects (
		id, description, source, input_schema, output_schema, status, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, insertSQL,
		p.ID, p.Description, string(sourceJSON),
		p.InputSchema, p.OutputSchema, string(p.Status),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeDatabase, "failed to store project")
	}

	return &p, nil
}

// GetProject retrieves a project by identifier
func (r *DuckDBRepository) GetProject(ctx context.Context, id string) (*Project, error) {
	selectSQL := `
	SELECT id, description, source, input_schema, output_schema, status, created_at, updated_at
	FROM projects WHERE id = ?`

	row := r.db.QueryRowContext(ctx, selectSQL, id)

	p, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, errors.Newf(errors.ErrTypeNotFound, "project not found: %s", id)
	}

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeDatabase, "failed to load project")
	}

	return p, nil
}

// ListProjects returns stored projects ordered newest first
func (r *DuckDBRepository) ListProjects(ctx context.Context, limit, offset int) ([]Project, error) {
	listSQL := `
	SELECT id, description, source, input_schema, output_schema, status, created_at, updated_at
	FROM projects ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, listSQL, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeDatabase, "failed to list projects")
	}
	defer rows.Close()

	var projects []Project

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrTypeDatabase, "failed to scan project")
		}

		projects = append(projects, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeDatabase, "failed to iterate projects")
	}

	return projects, nil
}

// UpdateStatus transitions a project's training status
func (r *DuckDBRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	updateSQL := "UPDATE projects SET status = ?, updated_at = ? WHERE id = ?"

	result, err := r.db.ExecContext(ctx, updateSQL, string(status), time.Now(), id)
	if err != nil {
		return errors.Wrap(err, errors.ErrTypeDatabase, "failed to update project status")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, errors.ErrTypeDatabase, "failed to check status update")
	}

	if affected == 0 {
		return errors.Newf(errors.ErrTypeNotFound, "project not found: %s", id)
	}

	return nil
}

// Clear removes all stored projects
func (r *DuckDBRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM projects"); err != nil {
		return errors.Wrap(err, errors.ErrTypeDatabase, "failed to clear projects")
	}

	return nil
}

// Close closes the underlying database connection
func (r *DuckDBRepository) Close() error {
	return r.db.Close()
}

// scanner covers both sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*Project, error) {
	var (
		p          Project
		sourceJSON string
		status     string
	)

	err := s.Scan(
		&p.ID, &p.Description, &sourceJSON,
		&p.InputSchema, &p.OutputSchema, &status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Status = Status(status)

	var source datasource.Descriptor
	if err := json.Unmarshal([]byte(sourceJSON), &source); err != nil {
		return nil, fmt.Errorf("failed to decode data source: %w", err)
	}

	p.Source = source

	return &p, nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"
)

// Migration represents a database migration
type Migration struct {
	Version     int
	Description string
	Up          string
}

// MigrationManager handles database schema migrations
type MigrationManager struct {
	db *sql.DB
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *sql.DB) *MigrationManager {
	return &MigrationManager{db: db}
}

// GetMigrations returns all available migrations in order
func (m *MigrationManager) GetMigrations() []Migration {
	return []Migration{
		{
			Version:     1,
			Description: "Initial project schema",
			Up: `
				CREATE TABLE IF NOT EXISTS projects (
					id VARCHAR PRIMARY KEY,
					description TEXT NOT NULL,
					source VARCHAR NOT NULL,
					input_schema TEXT,
					output_schema TEXT,
					status VARCHAR NOT NULL,
					created_at TIMESTAMP,
					updated_at TIMESTAMP
				);
			`,
		},
		{
			Version:     2,
			Description: "Index projects by status for list filtering",
			Up: `
				CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);
			`,
		},
	}
}

// CurrentVersion returns the highest applied migration version, creating
// the tracking table if needed.
func (m *MigrationManager) CurrentVersion(ctx context.Context) (int, error) {
	createSQL := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMP
		);`
	if _, err := m.db.ExecContext(ctx, createSQL); err != nil {
		return 0, fmt.Errorf("failed to create migrations table: %w", err)
	}

	var version sql.NullInt64
	row := m.db.QueryRowContext(ctx, "SELECT MAX(version) FROM schema_migrations")

	if err := row.Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read migration version: %w", err)
	}

	if !version.Valid {
		return 0, nil
	}

	return int(version.Int64), nil
}

// MigrateUp applies all migrations newer than the current version.
func (m *MigrationManager) MigrateUp(ctx context.Context) error {
	current, err := m.CurrentVersion(ctx)
	if err != nil {
		return err
	}

	migrations := m.GetMigrations()
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		if _, err := m.db.ExecContext(ctx, migration.Up); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w",
				migration.Version, migration.Description, err)
		}

		recordSQL := "INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)"
		if _, err := m.db.ExecContext(ctx, recordSQL, migration.Version, time.Now()); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

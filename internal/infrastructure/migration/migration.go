package migration

import (
	"context"
	"log/slog"
)

// Dialect selects the SQL flavour of a migration.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ExecFunc runs a single statement. Both pgxpool and database/sql fit behind it.
type ExecFunc func(ctx context.Context, query string) error

// Migration represents a database migration
type Migration struct {
	Name string
	SQL  map[Dialect]string
}

var migrations = []Migration{
	{
		Name: "create_cv_exports",
		SQL: map[Dialect]string{
			Postgres: `
				CREATE TABLE IF NOT EXISTS cv_exports (
					id UUID PRIMARY KEY,
					language TEXT NOT NULL,
					status TEXT NOT NULL,
					filename TEXT NOT NULL,
					bytes INTEGER NOT NULL DEFAULT 0,
					duration_ms BIGINT NOT NULL DEFAULT 0,
					error TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMPTZ NOT NULL
				);`,
			SQLite: `
				CREATE TABLE IF NOT EXISTS cv_exports (
					id TEXT PRIMARY KEY,
					language TEXT NOT NULL,
					status TEXT NOT NULL,
					filename TEXT NOT NULL,
					bytes INTEGER NOT NULL DEFAULT 0,
					duration_ms INTEGER NOT NULL DEFAULT 0,
					error TEXT NOT NULL DEFAULT '',
					created_at TIMESTAMP NOT NULL
				);`,
		},
	},
	{
		Name: "index_cv_exports_created_at",
		SQL: map[Dialect]string{
			Postgres: `CREATE INDEX IF NOT EXISTS cv_exports_created_at ON cv_exports (created_at DESC);`,
			SQLite:   `CREATE INDEX IF NOT EXISTS cv_exports_created_at ON cv_exports (created_at DESC);`,
		},
	},
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, dialect Dialect, exec ExecFunc) error {
	slog.Info("Starting database migrations", "dialect", dialect)

	for _, m := range migrations {
		query, ok := m.SQL[dialect]
		if !ok {
			slog.Warn("Migration has no statement for dialect", "name", m.Name, "dialect", dialect)
			continue
		}
		if err := exec(ctx, query); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_normalize_jobs",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createNormalizeJobs(ctx, pool)
			},
		},
		{
			Name: "create_resumes",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return createResumes(ctx, pool)
			},
		},
		{
			Name: "add_warnings_to_normalize_jobs",
			Up: func(ctx context.Context, pool *pgxpool.Pool) error {
				return addWarningsToJobs(ctx, pool)
			},
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

func createNormalizeJobs(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS normalize_jobs (
			id UUID PRIMARY KEY,
			public_id TEXT NOT NULL,
			status TEXT NOT NULL,
			metadata JSONB DEFAULT '{}'::jsonb,
			warnings JSONB DEFAULT '[]'::jsonb,
			resume_id UUID,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		return err
	}
	return nil
}

func createResumes(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			public_id TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			document JSONB NOT NULL DEFAULT '{}'::jsonb,
			html_path TEXT NOT NULL DEFAULT '',
			pdf_path TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		return err
	}
	return nil
}

// addWarningsToJobs adds the warnings column for rows created before the
// column existed.
func addWarningsToJobs(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		ALTER TABLE normalize_jobs
		ADD COLUMN IF NOT EXISTS warnings JSONB DEFAULT '[]'::jsonb;
	`

	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the column may already exist
		slog.Warn("Error adding warnings column (may already exist)", "error", err)
		return nil
	}
	return nil
}

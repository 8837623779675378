package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the schema if it does not exist. Dates are
// stored as YYYY-MM-DD text. The SET NULL clauses back up the
// reference-clearing delete policy that Delete applies explicitly.
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS people (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			role TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS milestones (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			target_date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL,
			priority TEXT NOT NULL,
			start_date TEXT NOT NULL,
			due_date TEXT NOT NULL,
			assignee_id INTEGER,
			milestone_id INTEGER,
			FOREIGN KEY (assignee_id) REFERENCES people(id) ON DELETE SET NULL,
			FOREIGN KEY (milestone_id) REFERENCES milestones(id) ON DELETE SET NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_milestone ON tasks(milestone_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}

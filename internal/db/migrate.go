package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN fails once the column exists; the
			// statements are re-run on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateCompletedTasksUnique(db); err != nil {
		return fmt.Errorf("migrating completed_tasks uniqueness: %w", err)
	}
	return nil
}

var migrations = []string{
	// Single row holding the scalar parts of the progress record.
	`CREATE TABLE IF NOT EXISTS progress_meta (
		id           TEXT PRIMARY KEY DEFAULT 'default',
		current_week INTEGER NOT NULL DEFAULT 1,
		current_day  TEXT NOT NULL DEFAULT 'sat',
		updated_at   TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS completed_tasks (
		task_id  TEXT NOT NULL,
		position INTEGER NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS time_spent (
		task_id TEXT PRIMARY KEY,
		minutes INTEGER NOT NULL DEFAULT 0 CHECK(minutes >= 0)
	)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id         TEXT PRIMARY KEY,
		position   INTEGER NOT NULL,
		title      TEXT NOT NULL DEFAULT '',
		content    TEXT NOT NULL DEFAULT '',
		tags       TEXT NOT NULL DEFAULT '[]',
		task_id    TEXT NOT NULL DEFAULT '',
		template   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notes_task ON notes(task_id)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		id         TEXT PRIMARY KEY,
		position   INTEGER NOT NULL,
		date       TEXT NOT NULL DEFAULT '',
		content    TEXT NOT NULL DEFAULT '',
		week       INTEGER NOT NULL,
		day        TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_journal_week_day ON journal_entries(week, day)`,

	`CREATE TABLE IF NOT EXISTS skills (
		id          TEXT PRIMARY KEY,
		position    INTEGER NOT NULL,
		name        TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		proficiency TEXT NOT NULL DEFAULT 'Beginner'
		            CHECK(proficiency IN ('Beginner','Intermediate','Advanced','Expert'))
	)`,

	// Seed the singleton progress row
	`INSERT OR IGNORE INTO progress_meta (id) VALUES ('default')`,

	// Add schema_version to progress_meta
	`ALTER TABLE progress_meta ADD COLUMN schema_version INTEGER NOT NULL DEFAULT 1`,

	// Add free-form notes to skills
	`ALTER TABLE skills ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}

// migrateCompletedTasksUnique removes repeated task ids left by databases
// written before completion became idempotent, keeping the first one, and
// then enforces uniqueness with an index.
func migrateCompletedTasksUnique(db *sql.DB) error {
	ctx := context.Background()

	var dups int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) - COUNT(DISTINCT task_id) FROM completed_tasks`).Scan(&dups); err != nil {
		return fmt.Errorf("counting duplicates: %w", err)
	}
	if dups > 0 {
		if _, err := db.ExecContext(ctx, `DELETE FROM completed_tasks
			WHERE rowid NOT IN (SELECT MIN(rowid) FROM completed_tasks GROUP BY task_id)`); err != nil {
			return fmt.Errorf("deleting duplicates: %w", err)
		}
	}

	if _, err := db.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS idx_completed_tasks_task ON completed_tasks(task_id)`); err != nil {
		return fmt.Errorf("creating idx_completed_tasks_task: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/progressmate/internal/db"
	"github.com/alexanderramin/progressmate/internal/domain"
)

// SQLiteProgressRepo stores UserProgress across one table per collection.
// Save rewrites every table, so it should run inside a transaction; use
// NewTxProgressRepo for that.
type SQLiteProgressRepo struct {
	db db.DBTX
}

func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) Load(ctx context.Context) (*domain.UserProgress, error) {
	p := domain.NewUserProgress()

	err := r.db.QueryRowContext(ctx,
		`SELECT schema_version, current_week, current_day FROM progress_meta WHERE id = 'default'`,
	).Scan(&p.SchemaVersion, &p.CurrentWeek, &p.CurrentDay)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("progress: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning progress meta: %w", err)
	}

	if p.CompletedTasks, err = r.loadCompleted(ctx); err != nil {
		return nil, err
	}
	if p.TimeSpent, err = r.loadTimeSpent(ctx); err != nil {
		return nil, err
	}
	if p.Notes, err = r.loadNotes(ctx); err != nil {
		return nil, err
	}
	if p.JournalEntries, err = r.loadJournal(ctx); err != nil {
		return nil, err
	}
	if p.Skills, err = r.loadSkills(ctx); err != nil {
		return nil, err
	}

	p.Normalize()
	return &p, nil
}

func (r *SQLiteProgressRepo) loadCompleted(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT task_id FROM completed_tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing completed tasks: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning completed task: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *SQLiteProgressRepo) loadTimeSpent(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT task_id, minutes FROM time_spent`)
	if err != nil {
		return nil, fmt.Errorf("listing time spent: %w", err)
	}
	defer rows.Close()

	spent := map[string]int{}
	for rows.Next() {
		var id string
		var minutes int
		if err := rows.Scan(&id, &minutes); err != nil {
			return nil, fmt.Errorf("scanning time spent: %w", err)
		}
		spent[id] = minutes
	}
	return spent, rows.Err()
}

func (r *SQLiteProgressRepo) loadNotes(ctx context.Context) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, content, tags, task_id, template, created_at, updated_at
		FROM notes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.Note{}
	for rows.Next() {
		var n domain.Note
		var tags, createdAt, updatedAt string
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &tags, &n.TaskID, &n.Template, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		n.Tags = decodeTags(tags)
		n.CreatedAt = parseTime(createdAt)
		n.UpdatedAt = parseTime(updatedAt)
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *SQLiteProgressRepo) loadJournal(ctx context.Context) ([]domain.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, content, week, day, created_at FROM journal_entries ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var e domain.JournalEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Date, &e.Content, &e.Week, &e.Day, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLiteProgressRepo) loadSkills(ctx context.Context) ([]domain.Skill, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, category, proficiency, notes FROM skills ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.Notes); err != nil {
			return nil, fmt.Errorf("scanning skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// Save replaces the stored record with p.
func (r *SQLiteProgressRepo) Save(ctx context.Context, p *domain.UserProgress) error {
	version := p.SchemaVersion
	if version == 0 {
		version = domain.ProgressSchemaVersion
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO progress_meta (id, schema_version, current_week, current_day, updated_at)
		VALUES ('default', ?, ?, ?, ?)`,
		version, p.CurrentWeek, p.CurrentDay, nowUTC(),
	); err != nil {
		return fmt.Errorf("saving progress meta: %w", err)
	}

	if err := r.replaceCompleted(ctx, p.CompletedTasks); err != nil {
		return err
	}
	if err := r.replaceTimeSpent(ctx, p.TimeSpent); err != nil {
		return err
	}
	if err := r.replaceNotes(ctx, p.Notes); err != nil {
		return err
	}
	if err := r.replaceJournal(ctx, p.JournalEntries); err != nil {
		return err
	}
	return r.replaceSkills(ctx, p.Skills)
}

func (r *SQLiteProgressRepo) replaceCompleted(ctx context.Context, ids []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM completed_tasks`); err != nil {
		return fmt.Errorf("clearing completed tasks: %w", err)
	}
	for i, id := range ids {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO completed_tasks (task_id, position) VALUES (?, ?)`, id, i,
		); err != nil {
			return fmt.Errorf("inserting completed task %s: %w", id, err)
		}
	}
	return nil
}

func (r *SQLiteProgressRepo) replaceTimeSpent(ctx context.Context, spent map[string]int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM time_spent`); err != nil {
		return fmt.Errorf("clearing time spent: %w", err)
	}
	for id, minutes := range spent {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO time_spent (task_id, minutes) VALUES (?, ?)`, id, minutes,
		); err != nil {
			return fmt.Errorf("inserting time spent for %s: %w", id, err)
		}
	}
	return nil
}

func (r *SQLiteProgressRepo) replaceNotes(ctx context.Context, notes []domain.Note) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("clearing notes: %w", err)
	}
	for i, n := range notes {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO notes (id, position, title, content, tags, task_id, template, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			n.ID, i, n.Title, n.Content, encodeTags(n.Tags), n.TaskID, n.Template,
			formatTime(n.CreatedAt), formatTime(n.UpdatedAt),
		); err != nil {
			return fmt.Errorf("inserting note %s: %w", n.ID, err)
		}
	}
	return nil
}

func (r *SQLiteProgressRepo) replaceJournal(ctx context.Context, entries []domain.JournalEntry) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries`); err != nil {
		return fmt.Errorf("clearing journal entries: %w", err)
	}
	for i, e := range entries {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO journal_entries (id, position, date, content, week, day, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			e.ID, i, e.Date, e.Content, e.Week, e.Day, formatTime(e.CreatedAt),
		); err != nil {
			return fmt.Errorf("inserting journal entry %s: %w", e.ID, err)
		}
	}
	return nil
}

func (r *SQLiteProgressRepo) replaceSkills(ctx context.Context, skills []domain.Skill) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM skills`); err != nil {
		return fmt.Errorf("clearing skills: %w", err)
	}
	for i, s := range skills {
		proficiency := s.Proficiency
		if !proficiency.Valid() {
			proficiency = domain.ProficiencyBeginner
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO skills (id, position, name, category, proficiency, notes) VALUES (?, ?, ?, ?, ?, ?)`,
			s.ID, i, s.Name, s.Category, proficiency, s.Notes,
		); err != nil {
			return fmt.Errorf("inserting skill %s: %w", s.ID, err)
		}
	}
	return nil
}

// TxProgressRepo runs each Load and Save of a SQLiteProgressRepo inside its
// own transaction.
type TxProgressRepo struct {
	uow db.UnitOfWork
}

func NewTxProgressRepo(uow db.UnitOfWork) *TxProgressRepo {
	return &TxProgressRepo{uow: uow}
}

func (r *TxProgressRepo) Load(ctx context.Context) (*domain.UserProgress, error) {
	var p *domain.UserProgress
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		p, err = NewSQLiteProgressRepo(tx).Load(ctx)
		return err
	})
	return p, err
}

func (r *TxProgressRepo) Save(ctx context.Context, p *domain.UserProgress) error {
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteProgressRepo(tx).Save(ctx, p)
	})
}

var (
	_ ProgressRepo = (*SQLiteProgressRepo)(nil)
	_ ProgressRepo = (*TxProgressRepo)(nil)
)

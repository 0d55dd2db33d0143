package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

const sqliteTaskSchema = `
CREATE TABLE IF NOT EXISTS tasks (
    id           TEXT PRIMARY KEY,
    owner_id     TEXT NOT NULL,
    title        TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL DEFAULT '',
    due_date     TEXT NOT NULL,
    completed    INTEGER NOT NULL DEFAULT 0,
    completed_at TEXT,
    created_at   TEXT NOT NULL,
    updated_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks(owner_id, created_at);
`

// SQLiteTaskRepository implements task.Repository using SQLite.
// Timestamps are stored as RFC3339 text.
type SQLiteTaskRepository struct {
	db *sql.DB
}

// NewSQLiteTaskRepository creates a new SQLite task repository and
// ensures the schema exists.
func NewSQLiteTaskRepository(ctx context.Context, db *sql.DB) (*SQLiteTaskRepository, error) {
	if _, err := db.ExecContext(ctx, sqliteTaskSchema); err != nil {
		return nil, fmt.Errorf("ensure tasks schema: %w", err)
	}
	return &SQLiteTaskRepository{db: db}, nil
}

// Save persists a task, inserting or replacing by ID.
func (r *SQLiteTaskRepository) Save(ctx context.Context, t *task.Task) error {
	var completedAt sql.NullString
	if t.CompletedAt() != nil {
		completedAt = sql.NullString{String: t.CompletedAt().Format(time.RFC3339), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, owner_id, title, description, category, due_date, completed, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			category = excluded.category,
			due_date = excluded.due_date,
			completed = excluded.completed,
			completed_at = excluded.completed_at,
			updated_at = excluded.updated_at`,
		t.ID().String(), t.OwnerID().String(),
		t.Title(), t.Description(), t.Category().String(),
		t.DueDate().Format(time.RFC3339),
		boolToInt(t.IsCompleted()), completedAt,
		t.CreatedAt().Format(time.RFC3339), t.UpdatedAt().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *SQLiteTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, title, description, category, due_date, completed, completed_at, created_at, updated_at
		FROM tasks WHERE id = ?`, id.String())

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, task.ErrNotFound
	}
	return t, err
}

// FindByOwner retrieves all tasks for an owner, oldest first.
func (r *SQLiteTaskRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, title, description, category, due_date, completed, completed_at, created_at, updated_at
		FROM tasks WHERE owner_id = ? ORDER BY created_at, id`, ownerID.String())
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Delete removes a task by ID.
func (r *SQLiteTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return task.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		idStr, ownerStr           string
		title, description        string
		category                  string
		dueStr, createdStr, updStr string
		completed                 int
		completedAtStr            sql.NullString
	)
	if err := row.Scan(&idStr, &ownerStr, &title, &description, &category, &dueStr, &completed, &completedAtStr, &createdStr, &updStr); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse task id: %w", err)
	}
	ownerID, err := uuid.Parse(ownerStr)
	if err != nil {
		return nil, fmt.Errorf("parse owner id: %w", err)
	}

	dueDate, err := time.Parse(time.RFC3339, dueStr)
	if err != nil {
		return nil, fmt.Errorf("parse due date: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdStr)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339, updStr)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}

	var completedAt *time.Time
	if completedAtStr.Valid {
		at, err := time.Parse(time.RFC3339, completedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("parse completed_at: %w", err)
		}
		completedAt = &at
	}

	return task.Rehydrate(id, ownerID, title, description, task.Category(category), dueDate, completed != 0, completedAt, createdAt, updatedAt), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

const postgresTaskSchema = `
CREATE TABLE IF NOT EXISTS tasks (
    id           UUID PRIMARY KEY,
    owner_id     UUID NOT NULL,
    title        TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    category     TEXT NOT NULL DEFAULT '',
    due_date     TIMESTAMPTZ NOT NULL,
    completed    BOOLEAN NOT NULL DEFAULT FALSE,
    completed_at TIMESTAMPTZ,
    created_at   TIMESTAMPTZ NOT NULL,
    updated_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks(owner_id, created_at);
`

// PostgresTaskRepository implements task.Repository using PostgreSQL.
type PostgresTaskRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTaskRepository creates a new PostgreSQL task repository and
// ensures the schema exists.
func NewPostgresTaskRepository(ctx context.Context, pool *pgxpool.Pool) (*PostgresTaskRepository, error) {
	if _, err := pool.Exec(ctx, postgresTaskSchema); err != nil {
		return nil, fmt.Errorf("ensure tasks schema: %w", err)
	}
	return &PostgresTaskRepository{pool: pool}, nil
}

// Save persists a task, inserting or updating by ID.
func (r *PostgresTaskRepository) Save(ctx context.Context, t *task.Task) error {
	var completedAt *time.Time
	if t.CompletedAt() != nil {
		at := *t.CompletedAt()
		completedAt = &at
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO tasks (id, owner_id, title, description, category, due_date, completed, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			due_date = EXCLUDED.due_date,
			completed = EXCLUDED.completed,
			completed_at = EXCLUDED.completed_at,
			updated_at = EXCLUDED.updated_at`,
		t.ID(), t.OwnerID(),
		t.Title(), t.Description(), t.Category().String(),
		t.DueDate(), t.IsCompleted(), completedAt,
		t.CreatedAt(), t.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *PostgresTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, title, description, category, due_date, completed, completed_at, created_at, updated_at
		FROM tasks WHERE id = $1`, id)

	t, err := scanPostgresTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, task.ErrNotFound
	}
	return t, err
}

// FindByOwner retrieves all tasks for an owner, oldest first.
func (r *PostgresTaskRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, title, description, category, due_date, completed, completed_at, created_at, updated_at
		FROM tasks WHERE owner_id = $1 ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanPostgresTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Delete removes a task by ID.
func (r *PostgresTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrNotFound
	}
	return nil
}

func scanPostgresTask(row pgx.Row) (*task.Task, error) {
	var (
		id, ownerID          uuid.UUID
		title, description   string
		category             string
		dueDate              time.Time
		completed            bool
		completedAt          *time.Time
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &ownerID, &title, &description, &category, &dueDate, &completed, &completedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return task.Rehydrate(id, ownerID, title, description, task.Category(category), dueDate, completed, completedAt, createdAt, updatedAt), nil
}

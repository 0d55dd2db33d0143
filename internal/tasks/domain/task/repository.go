package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a task does not exist in the store.
var ErrNotFound = errors.New("task not found")

// Repository defines the interface for task persistence. Implementations
// must preserve insertion order in FindByOwner so that query results are
// stable across calls.
type Repository interface {
	Save(ctx context.Context, task *Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*Task, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Package persistence provides the task store drivers: an in-memory
// store for local and test use, SQLite for single-node deployments, and
// Postgres for server mode.
package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

// MemoryTaskRepository implements task.Repository over an in-process
// map. It hands out defensive copies, so callers always work on value
// snapshots, and preserves insertion order for FindByOwner.
type MemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*task.Task
	order []uuid.UUID
}

// NewMemoryTaskRepository creates an empty in-memory task repository.
func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks: make(map[uuid.UUID]*task.Task),
	}
}

func cloneTask(t *task.Task) *task.Task {
	var completedAt *time.Time
	if t.CompletedAt() != nil {
		at := *t.CompletedAt()
		completedAt = &at
	}
	return task.Rehydrate(
		t.ID(), t.OwnerID(),
		t.Title(), t.Description(), t.Category(),
		t.DueDate(), t.IsCompleted(), completedAt,
		t.CreatedAt(), t.UpdatedAt(),
	)
}

// Save stores a snapshot of the task, inserting or replacing by ID.
func (r *MemoryTaskRepository) Save(ctx context.Context, t *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[t.ID()]; !exists {
		r.order = append(r.order, t.ID())
	}
	r.tasks[t.ID()] = cloneTask(t)
	return nil
}

// FindByID retrieves a task snapshot by ID.
func (r *MemoryTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, task.ErrNotFound
	}
	return cloneTask(t), nil
}

// FindByOwner retrieves all tasks for an owner in insertion order.
func (r *MemoryTaskRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]*task.Task, 0)
	for _, id := range r.order {
		t := r.tasks[id]
		if t.OwnerID() == ownerID {
			tasks = append(tasks, cloneTask(t))
		}
	}
	return tasks, nil
}

// Delete removes a task by ID.
func (r *MemoryTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return task.ErrNotFound
	}
	delete(r.tasks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

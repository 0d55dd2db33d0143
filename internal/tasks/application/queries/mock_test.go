package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Save(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*task.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	args := m.Called(ctx, ownerID)
	if tasks := args.Get(0); tasks != nil {
		return tasks.([]*task.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newStoredTask(ownerID uuid.UUID, title string, category task.Category, due time.Time, completed bool) *task.Task {
	t, err := task.NewTask(ownerID, title, category, due)
	if err != nil {
		panic(err)
	}
	if completed {
		if err := t.Complete(); err != nil {
			panic(err)
		}
	}
	return t
}

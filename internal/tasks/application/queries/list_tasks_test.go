package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

func TestListTasksHandler_Handle(t *testing.T) {
	ownerID := uuid.New()
	due := time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local)

	t.Run("returns all tasks for a neutral spec", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		tasks := []*task.Task{
			newStoredTask(ownerID, "Task 1", task.CategoryWork, due, false),
			newStoredTask(ownerID, "Task 2", task.CategoryPersonal, due, true),
		}
		repo.On("FindByOwner", mock.Anything, ownerID).Return(tasks, nil)

		result, err := handler.Handle(context.Background(), ListTasksQuery{OwnerID: ownerID, Spec: NeutralSpec()})

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Task 1", result[0].Title)
		assert.Equal(t, "Task 2", result[1].Title)

		repo.AssertExpectations(t)
	})

	t.Run("applies the filter spec", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		tasks := []*task.Task{
			newStoredTask(ownerID, "Active work", task.CategoryWork, due, false),
			newStoredTask(ownerID, "Done work", task.CategoryWork, due, true),
			newStoredTask(ownerID, "Active personal", task.CategoryPersonal, due, false),
		}
		repo.On("FindByOwner", mock.Anything, ownerID).Return(tasks, nil)

		result, err := handler.Handle(context.Background(), ListTasksQuery{
			OwnerID: ownerID,
			Spec:    FilterSpec{Category: "Work", Status: StatusActive},
		})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Active work", result[0].Title)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		repo.On("FindByOwner", mock.Anything, ownerID).Return([]*task.Task{}, nil)

		result, err := handler.Handle(context.Background(), ListTasksQuery{OwnerID: ownerID})

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewListTasksHandler(repo)

		repo.On("FindByOwner", mock.Anything, ownerID).Return(nil, errors.New("store down"))

		_, err := handler.Handle(context.Background(), ListTasksQuery{OwnerID: ownerID})

		assert.Error(t, err)
	})
}

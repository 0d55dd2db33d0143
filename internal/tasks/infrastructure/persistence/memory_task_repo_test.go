package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

func newTestTask(t *testing.T, ownerID uuid.UUID, title string) *task.Task {
	t.Helper()
	due := time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local)
	tk, err := task.NewTask(ownerID, title, task.CategoryWork, due)
	require.NoError(t, err)
	return tk
}

func TestMemoryTaskRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("round-trips a task", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		tk := newTestTask(t, ownerID, "Stored")

		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, tk.ID(), found.ID())
		assert.Equal(t, "Stored", found.Title())
	})

	t.Run("save replaces by ID", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		tk := newTestTask(t, ownerID, "Before")
		require.NoError(t, repo.Save(ctx, tk))

		require.NoError(t, tk.SetTitle("After"))
		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, "After", found.Title())

		all, err := repo.FindByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("missing task yields not found", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, task.ErrNotFound)
	})

	t.Run("hands out snapshots", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		tk := newTestTask(t, ownerID, "Immutable")
		require.NoError(t, repo.Save(ctx, tk))

		found, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		require.NoError(t, found.SetTitle("Mutated copy"))

		again, err := repo.FindByID(ctx, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, "Immutable", again.Title())
	})
}

func TestMemoryTaskRepository_FindByOwner(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	otherID := uuid.New()

	t.Run("preserves insertion order", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Save(ctx, newTestTask(t, ownerID, fmt.Sprintf("Task %d", i))))
		}

		all, err := repo.FindByOwner(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, all, 5)
		for i, tk := range all {
			assert.Equal(t, fmt.Sprintf("Task %d", i), tk.Title())
		}
	})

	t.Run("scopes to the owner", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		require.NoError(t, repo.Save(ctx, newTestTask(t, ownerID, "Mine")))
		require.NoError(t, repo.Save(ctx, newTestTask(t, otherID, "Theirs")))

		all, err := repo.FindByOwner(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Mine", all[0].Title())
	})

	t.Run("unknown owner gets an empty slice", func(t *testing.T) {
		repo := NewMemoryTaskRepository()

		all, err := repo.FindByOwner(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestMemoryTaskRepository_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("removes the task", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		tk := newTestTask(t, ownerID, "Doomed")
		require.NoError(t, repo.Save(ctx, tk))

		require.NoError(t, repo.Delete(ctx, tk.ID()))

		_, err := repo.FindByID(ctx, tk.ID())
		assert.ErrorIs(t, err, task.ErrNotFound)

		all, err := repo.FindByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("missing task yields not found", func(t *testing.T) {
		repo := NewMemoryTaskRepository()
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), task.ErrNotFound)
	})
}

package task

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDueDate() time.Time {
	return time.Date(2026, 6, 1, 9, 0, 0, 0, time.Local)
}

func TestNewTask(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates a pending task", func(t *testing.T) {
		tk, err := NewTask(ownerID, "Buy groceries", CategoryPersonal, testDueDate())

		require.NoError(t, err)
		assert.Equal(t, ownerID, tk.OwnerID())
		assert.Equal(t, "Buy groceries", tk.Title())
		assert.Equal(t, CategoryPersonal, tk.Category())
		assert.False(t, tk.IsCompleted())
		assert.Nil(t, tk.CompletedAt())
	})

	t.Run("trims the title", func(t *testing.T) {
		tk, err := NewTask(ownerID, "  Buy groceries  ", CategoryPersonal, testDueDate())

		require.NoError(t, err)
		assert.Equal(t, "Buy groceries", tk.Title())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewTask(ownerID, "   ", CategoryPersonal, testDueDate())
		assert.ErrorIs(t, err, ErrEmptyTitle)
	})

	t.Run("rejects zero due date", func(t *testing.T) {
		_, err := NewTask(ownerID, "Buy groceries", CategoryPersonal, time.Time{})
		assert.ErrorIs(t, err, ErrZeroDueDate)
	})

	t.Run("emits TaskCreated", func(t *testing.T) {
		tk, err := NewTask(ownerID, "Buy groceries", CategoryPersonal, testDueDate())

		require.NoError(t, err)
		events := tk.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, RoutingKeyCreated, events[0].RoutingKey())
	})

	t.Run("keeps unrecognized categories", func(t *testing.T) {
		tk, err := NewTask(ownerID, "Odd one", Category("Hobby"), testDueDate())

		require.NoError(t, err)
		assert.Equal(t, Category("Hobby"), tk.Category())
		assert.False(t, tk.Category().Known())
	})
}

func TestTask_Complete(t *testing.T) {
	ownerID := uuid.New()

	t.Run("marks the task completed", func(t *testing.T) {
		tk, _ := NewTask(ownerID, "Task", CategoryWork, testDueDate())

		require.NoError(t, tk.Complete())

		assert.True(t, tk.IsCompleted())
		require.NotNil(t, tk.CompletedAt())
	})

	t.Run("fails when already completed", func(t *testing.T) {
		tk, _ := NewTask(ownerID, "Task", CategoryWork, testDueDate())
		require.NoError(t, tk.Complete())

		assert.ErrorIs(t, tk.Complete(), ErrAlreadyComplete)
	})
}

func TestTask_Reopen(t *testing.T) {
	ownerID := uuid.New()

	t.Run("clears completion", func(t *testing.T) {
		tk, _ := NewTask(ownerID, "Task", CategoryWork, testDueDate())
		require.NoError(t, tk.Complete())

		require.NoError(t, tk.Reopen())

		assert.False(t, tk.IsCompleted())
		assert.Nil(t, tk.CompletedAt())
	})

	t.Run("fails on an active task", func(t *testing.T) {
		tk, _ := NewTask(ownerID, "Task", CategoryWork, testDueDate())
		assert.ErrorIs(t, tk.Reopen(), ErrNotComplete)
	})
}

func TestTask_Setters(t *testing.T) {
	ownerID := uuid.New()

	t.Run("SetTitle validates", func(t *testing.T) {
		tk, _ := NewTask(ownerID, "Task", CategoryWork, testDueDate())

		assert.ErrorIs(t, tk.SetTitle(""), ErrEmptyTitle)
		require.NoError(t, tk.SetTitle("New title"))
		assert.Equal(t, "New title", tk.Title())
	})

	t.Run("SetDueDate rejects zero", func(t *testing.T) {
		tk, _ := NewTask(ownerID, "Task", CategoryWork, testDueDate())

		assert.ErrorIs(t, tk.SetDueDate(time.Time{}), ErrZeroDueDate)
	})

	t.Run("SetDescription trims", func(t *testing.T) {
		tk, _ := NewTask(ownerID, "Task", CategoryWork, testDueDate())

		tk.SetDescription("  notes  ")
		assert.Equal(t, "notes", tk.Description())
	})
}

func TestRehydrate(t *testing.T) {
	id := uuid.New()
	ownerID := uuid.New()
	completedAt := time.Date(2026, 6, 2, 10, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 5, 30, 8, 0, 0, 0, time.UTC)

	tk := Rehydrate(id, ownerID, "Stored", "from disk", CategoryUrgent, testDueDate(), true, &completedAt, createdAt, createdAt)

	assert.Equal(t, id, tk.ID())
	assert.Equal(t, ownerID, tk.OwnerID())
	assert.True(t, tk.IsCompleted())
	assert.Equal(t, createdAt, tk.CreatedAt())
	assert.Empty(t, tk.DomainEvents())
}

package queries

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

func TestCalendarHandler_Handle(t *testing.T) {
	ownerID := uuid.New()
	day := time.Date(2026, 6, 1, 0, 0, 0, 0, time.Local)

	t.Run("buckets tasks with derived status", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewCalendarHandler(repo)

		tasks := []*task.Task{
			newStoredTask(ownerID, "Done", task.CategoryWork, day.Add(9*time.Hour), true),
			newStoredTask(ownerID, "Pending", task.CategoryWork, day.Add(12*time.Hour), false),
			newStoredTask(ownerID, "Elsewhere", task.CategoryPersonal, day.AddDate(0, 0, 3), true),
		}
		repo.On("FindByOwner", mock.Anything, ownerID).Return(tasks, nil)

		view, err := handler.Handle(context.Background(), CalendarQuery{OwnerID: ownerID})

		require.NoError(t, err)
		require.Len(t, view.Days, 2)

		entry := view.Days[DayKey(day)]
		assert.Equal(t, 2, entry.Total)
		assert.Equal(t, 1, entry.CompletedCount)
		assert.Equal(t, DayStatusPartial, entry.Status)

		other := view.Days[DayKey(day.AddDate(0, 0, 3))]
		assert.Equal(t, DayStatusAllDone, other.Status)

		assert.Nil(t, view.Selected)
	})

	t.Run("lists tasks for the selected day", func(t *testing.T) {
		repo := new(mockTaskRepo)
		handler := NewCalendarHandler(repo)

		tasks := []*task.Task{
			newStoredTask(ownerID, "Today", task.CategoryWork, day.Add(9*time.Hour), false),
			newStoredTask(ownerID, "Tomorrow", task.CategoryWork, day.AddDate(0, 0, 1), false),
		}
		repo.On("FindByOwner", mock.Anything, ownerID).Return(tasks, nil)

		view, err := handler.Handle(context.Background(), CalendarQuery{OwnerID: ownerID, SelectedDate: &day})

		require.NoError(t, err)
		require.Len(t, view.Selected, 1)
		assert.Equal(t, "Today", view.Selected[0].Title)
	})
}

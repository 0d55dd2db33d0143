package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

// CalendarQuery contains the parameters for the calendar view.
type CalendarQuery struct {
	OwnerID uuid.UUID
	// SelectedDate, when set, additionally lists the tasks due on that
	// local calendar day.
	SelectedDate *time.Time
}

// DayEntry is a day bucket with its derived status.
type DayEntry struct {
	Total          int       `json:"total"`
	CompletedCount int       `json:"completedCount"`
	Status         DayStatus `json:"status"`
}

// CalendarView is the aggregate consumed by the calendar page: per-day
// buckets for highlighting plus the task list for the selected day.
type CalendarView struct {
	Days     map[string]DayEntry `json:"days"`
	Selected []TaskView          `json:"selected,omitempty"`
}

// CalendarHandler handles the CalendarQuery.
type CalendarHandler struct {
	taskRepo task.Repository
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(taskRepo task.Repository) *CalendarHandler {
	return &CalendarHandler{taskRepo: taskRepo}
}

// Handle fetches the owner's tasks and derives the calendar aggregates.
func (h *CalendarHandler) Handle(ctx context.Context, query CalendarQuery) (*CalendarView, error) {
	tasks, err := h.taskRepo.FindByOwner(ctx, query.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("calendar view: %w", err)
	}

	views := NewTaskViews(tasks)

	buckets := BucketByDueDate(views)
	days := make(map[string]DayEntry, len(buckets))
	for key, b := range buckets {
		days[key] = DayEntry{
			Total:          b.Total,
			CompletedCount: b.CompletedCount,
			Status:         b.Status(),
		}
	}

	view := &CalendarView{Days: days}

	if query.SelectedDate != nil {
		view.Selected = EvaluateFilter(views, FilterSpec{Date: query.SelectedDate})
	}

	return view, nil
}

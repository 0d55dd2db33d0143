package queries

import (
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

// TaskView is an immutable snapshot of a task as consumed by clients.
// DueDate carries the raw ISO-8601 string rather than a parsed time so
// that snapshots from external sources with malformed dates are
// representable; the query engine handles those by exclusion.
type TaskView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Badge       string    `json:"badge"`
	DueDate     string    `json:"dueDate"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTaskView builds a snapshot from a domain task.
func NewTaskView(t *task.Task) TaskView {
	return TaskView{
		ID:          t.ID(),
		OwnerID:     t.OwnerID(),
		Title:       t.Title(),
		Description: t.Description(),
		Category:    t.Category().String(),
		Badge:       string(t.Category().Badge()),
		DueDate:     t.DueDate().Format(time.RFC3339),
		Completed:   t.IsCompleted(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

// NewTaskViews builds snapshots for a slice of domain tasks, preserving order.
func NewTaskViews(tasks []*task.Task) []TaskView {
	views := make([]TaskView, len(tasks))
	for i, t := range tasks {
		views[i] = NewTaskView(t)
	}
	return views
}

package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

// ListTasksQuery contains the parameters for listing tasks.
type ListTasksQuery struct {
	OwnerID uuid.UUID
	Spec    FilterSpec
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo task.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo task.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle fetches the owner's tasks and applies the filter spec. The
// store's insertion order is preserved for matching tasks.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) ([]TaskView, error) {
	tasks, err := h.taskRepo.FindByOwner(ctx, query.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return EvaluateFilter(NewTaskViews(tasks), query.Spec), nil
}

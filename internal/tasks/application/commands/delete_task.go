package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/shared/infrastructure/eventbus"
	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

// DeleteTaskCommand contains the data needed to delete a task.
type DeleteTaskCommand struct {
	TaskID  uuid.UUID
	OwnerID uuid.UUID
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	taskRepo  task.Repository
	publisher eventbus.Publisher
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(taskRepo task.Repository, publisher eventbus.Publisher) *DeleteTaskHandler {
	return &DeleteTaskHandler{taskRepo: taskRepo, publisher: publisher}
}

// Handle executes the DeleteTaskCommand.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	if t.OwnerID() != cmd.OwnerID {
		return ErrNotOwner
	}

	if err := h.taskRepo.Delete(ctx, cmd.TaskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	if err := h.publisher.Publish(ctx, task.NewTaskDeleted(cmd.TaskID)); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}

	return nil
}

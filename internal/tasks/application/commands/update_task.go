package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/shared/infrastructure/eventbus"
	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

// UpdateTaskCommand contains the data needed to update a task. Nil
// pointer fields mean "no change".
type UpdateTaskCommand struct {
	TaskID      uuid.UUID
	OwnerID     uuid.UUID
	Title       *string
	Description *string
	Category    *string
	DueDate     *time.Time
}

// UpdateTaskHandler handles the UpdateTaskCommand.
type UpdateTaskHandler struct {
	taskRepo  task.Repository
	publisher eventbus.Publisher
}

// NewUpdateTaskHandler creates a new UpdateTaskHandler.
func NewUpdateTaskHandler(taskRepo task.Repository, publisher eventbus.Publisher) *UpdateTaskHandler {
	return &UpdateTaskHandler{taskRepo: taskRepo, publisher: publisher}
}

// Handle executes the UpdateTaskCommand.
func (h *UpdateTaskHandler) Handle(ctx context.Context, cmd UpdateTaskCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	if t.OwnerID() != cmd.OwnerID {
		return ErrNotOwner
	}

	var updatedFields []string

	if cmd.Title != nil {
		if err := t.SetTitle(*cmd.Title); err != nil {
			return err
		}
		updatedFields = append(updatedFields, "title")
	}

	if cmd.Description != nil {
		t.SetDescription(*cmd.Description)
		updatedFields = append(updatedFields, "description")
	}

	if cmd.Category != nil {
		t.SetCategory(task.Category(*cmd.Category))
		updatedFields = append(updatedFields, "category")
	}

	if cmd.DueDate != nil {
		if err := t.SetDueDate(*cmd.DueDate); err != nil {
			return err
		}
		updatedFields = append(updatedFields, "due_date")
	}

	if len(updatedFields) == 0 {
		return nil
	}

	t.AddDomainEvent(task.NewTaskUpdated(t.ID(), updatedFields))

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return fmt.Errorf("save task: %w", err)
	}

	if err := h.publisher.Publish(ctx, t.DomainEvents()...); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}
	t.ClearDomainEvents()

	return nil
}

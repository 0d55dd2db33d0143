// Package commands contains the task mutation handlers. Each handler
// loads the aggregate, applies the change, saves it, and publishes the
// resulting domain events.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/shared/infrastructure/eventbus"
	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

// ErrNotOwner is returned when a task does not belong to the requesting user.
var ErrNotOwner = errors.New("task does not belong to user")

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Category    string
	DueDate     time.Time
}

// CreateTaskResult contains the result of creating a task.
type CreateTaskResult struct {
	TaskID uuid.UUID
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo  task.Repository
	publisher eventbus.Publisher
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo task.Repository, publisher eventbus.Publisher) *CreateTaskHandler {
	return &CreateTaskHandler{taskRepo: taskRepo, publisher: publisher}
}

// Handle executes the CreateTaskCommand.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	t, err := task.NewTask(cmd.OwnerID, cmd.Title, task.Category(cmd.Category), cmd.DueDate)
	if err != nil {
		return nil, err
	}

	if cmd.Description != "" {
		t.SetDescription(cmd.Description)
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if err := h.publisher.Publish(ctx, t.DomainEvents()...); err != nil {
		return nil, fmt.Errorf("publish events: %w", err)
	}
	t.ClearDomainEvents()

	return &CreateTaskResult{TaskID: t.ID()}, nil
}

package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/shared/infrastructure/eventbus"
	"github.com/taskdeck/taskdeck/internal/tasks/domain/task"
)

// SetCompletionCommand marks a task completed or active again. Clients
// toggle a checkbox, so the target state is explicit rather than a flip.
type SetCompletionCommand struct {
	TaskID    uuid.UUID
	OwnerID   uuid.UUID
	Completed bool
}

// SetCompletionHandler handles the SetCompletionCommand.
type SetCompletionHandler struct {
	taskRepo  task.Repository
	publisher eventbus.Publisher
}

// NewSetCompletionHandler creates a new SetCompletionHandler.
func NewSetCompletionHandler(taskRepo task.Repository, publisher eventbus.Publisher) *SetCompletionHandler {
	return &SetCompletionHandler{taskRepo: taskRepo, publisher: publisher}
}

// Handle executes the SetCompletionCommand. Asking for the state the
// task is already in is a no-op, not an error, so repeated toggles from
// a stale client cannot fail.
func (h *SetCompletionHandler) Handle(ctx context.Context, cmd SetCompletionCommand) error {
	t, err := h.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return err
	}

	if t.OwnerID() != cmd.OwnerID {
		return ErrNotOwner
	}

	if t.IsCompleted() == cmd.Completed {
		return nil
	}

	if cmd.Completed {
		err = t.Complete()
	} else {
		err = t.Reopen()
	}
	if err != nil {
		return err
	}

	if err := h.taskRepo.Save(ctx, t); err != nil {
		return fmt.Errorf("save task: %w", err)
	}

	if err := h.publisher.Publish(ctx, t.DomainEvents()...); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}
	t.ClearDomainEvents()

	return nil
}

package task

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/shared/domain"
)

var (
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrZeroDueDate     = errors.New("task due date is required")
	ErrAlreadyComplete = errors.New("task is already completed")
	ErrNotComplete     = errors.New("task is not completed")
)

// Task represents a user-owned unit of work with a due date.
type Task struct {
	domain.BaseAggregateRoot
	ownerID     uuid.UUID
	title       string
	description string
	category    Category
	dueDate     time.Time
	completed   bool
	completedAt *time.Time
}

// NewTask creates a new task. The title must be non-empty and the due
// date must be set; both are validated here, not by callers.
func NewTask(ownerID uuid.UUID, title string, category Category, dueDate time.Time) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if dueDate.IsZero() {
		return nil, ErrZeroDueDate
	}

	t := &Task{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		ownerID:           ownerID,
		title:             title,
		category:          category,
		dueDate:           dueDate,
	}

	t.AddDomainEvent(NewTaskCreated(t.ID(), t.title, string(t.category)))

	return t, nil
}

// Rehydrate reconstructs a task from persisted state without emitting events.
func Rehydrate(id, ownerID uuid.UUID, title, description string, category Category, dueDate time.Time, completed bool, completedAt *time.Time, createdAt, updatedAt time.Time) *Task {
	return &Task{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(domain.RehydrateBaseEntity(id, createdAt, updatedAt)),
		ownerID:           ownerID,
		title:             title,
		description:       description,
		category:          category,
		dueDate:           dueDate,
		completed:         completed,
		completedAt:       completedAt,
	}
}

func (t *Task) OwnerID() uuid.UUID      { return t.ownerID }
func (t *Task) Title() string           { return t.title }
func (t *Task) Description() string     { return t.description }
func (t *Task) Category() Category      { return t.category }
func (t *Task) DueDate() time.Time      { return t.dueDate }
func (t *Task) IsCompleted() bool       { return t.completed }
func (t *Task) CompletedAt() *time.Time { return t.completedAt }

// SetTitle updates the task title.
func (t *Task) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	t.title = title
	t.Touch()
	return nil
}

// SetDescription updates the task description. An empty description is valid.
func (t *Task) SetDescription(description string) {
	t.description = strings.TrimSpace(description)
	t.Touch()
}

// SetCategory updates the task category. Unrecognized categories are kept
// as-is; they fall back to the default badge style at display time.
func (t *Task) SetCategory(category Category) {
	t.category = category
	t.Touch()
}

// SetDueDate updates the due date.
func (t *Task) SetDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return ErrZeroDueDate
	}
	t.dueDate = dueDate
	t.Touch()
	return nil
}

// Complete marks the task as completed.
func (t *Task) Complete() error {
	if t.completed {
		return ErrAlreadyComplete
	}

	now := time.Now().UTC()
	t.completed = true
	t.completedAt = &now
	t.Touch()

	t.AddDomainEvent(NewTaskCompleted(t.ID()))

	return nil
}

// Reopen marks a completed task as active again.
func (t *Task) Reopen() error {
	if !t.completed {
		return ErrNotComplete
	}

	t.completed = false
	t.completedAt = nil
	t.Touch()

	t.AddDomainEvent(NewTaskReopened(t.ID()))

	return nil
}

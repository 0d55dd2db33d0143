package task

import (
	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/shared/domain"
)

const (
	AggregateType = "Task"

	RoutingKeyCreated   = "tasks.task.created"
	RoutingKeyUpdated   = "tasks.task.updated"
	RoutingKeyCompleted = "tasks.task.completed"
	RoutingKeyReopened  = "tasks.task.reopened"
	RoutingKeyDeleted   = "tasks.task.deleted"
)

// TaskCreated is emitted when a new task is created.
type TaskCreated struct {
	domain.BaseEvent
	Title    string `json:"title"`
	Category string `json:"category"`
}

// NewTaskCreated creates a TaskCreated event.
func NewTaskCreated(taskID uuid.UUID, title, category string) TaskCreated {
	return TaskCreated{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyCreated),
		Title:     title,
		Category:  category,
	}
}

// TaskUpdated is emitted when a task is updated.
type TaskUpdated struct {
	domain.BaseEvent
	Fields []string `json:"fields"` // Names of fields that were updated
}

// NewTaskUpdated creates a TaskUpdated event.
func NewTaskUpdated(taskID uuid.UUID, fields []string) TaskUpdated {
	return TaskUpdated{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyUpdated),
		Fields:    fields,
	}
}

// TaskCompleted is emitted when a task is completed.
type TaskCompleted struct {
	domain.BaseEvent
}

// NewTaskCompleted creates a TaskCompleted event.
func NewTaskCompleted(taskID uuid.UUID) TaskCompleted {
	return TaskCompleted{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyCompleted),
	}
}

// TaskReopened is emitted when a completed task is reopened.
type TaskReopened struct {
	domain.BaseEvent
}

// NewTaskReopened creates a TaskReopened event.
func NewTaskReopened(taskID uuid.UUID) TaskReopened {
	return TaskReopened{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyReopened),
	}
}

// TaskDeleted is emitted when a task is deleted.
type TaskDeleted struct {
	domain.BaseEvent
}

// NewTaskDeleted creates a TaskDeleted event.
func NewTaskDeleted(taskID uuid.UUID) TaskDeleted {
	return TaskDeleted{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyDeleted),
	}
}

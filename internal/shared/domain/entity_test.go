package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseEntity(t *testing.T) {
	t.Run("new entity has identity and timestamps", func(t *testing.T) {
		e := NewBaseEntity()

		assert.NotEqual(t, uuid.Nil, e.ID())
		assert.False(t, e.CreatedAt().IsZero())
		assert.Equal(t, e.CreatedAt(), e.UpdatedAt())
	})

	t.Run("rehydrate keeps persisted state", func(t *testing.T) {
		id := uuid.New()
		createdAt := time.Date(2026, 5, 30, 8, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		e := RehydrateBaseEntity(id, createdAt, updatedAt)

		assert.Equal(t, id, e.ID())
		assert.Equal(t, createdAt, e.CreatedAt())
		assert.Equal(t, updatedAt, e.UpdatedAt())
	})

	t.Run("touch advances updatedAt only", func(t *testing.T) {
		e := NewBaseEntity()
		created := e.CreatedAt()
		before := e.UpdatedAt()

		time.Sleep(time.Millisecond)
		e.Touch()

		assert.Equal(t, created, e.CreatedAt())
		assert.True(t, e.UpdatedAt().After(before))
	})

	t.Run("equality is by identity", func(t *testing.T) {
		a := NewBaseEntity()
		b := NewBaseEntity()
		sameAsA := RehydrateBaseEntity(a.ID(), time.Now(), time.Now())

		assert.True(t, a.Equals(sameAsA))
		assert.False(t, a.Equals(b))
		assert.False(t, a.Equals(nil))
	})
}

func TestBaseAggregateRoot(t *testing.T) {
	t.Run("records and clears events", func(t *testing.T) {
		root := NewBaseAggregateRoot()
		assert.Empty(t, root.DomainEvents())

		root.AddDomainEvent(NewBaseEvent(root.ID(), "test", "test.created"))
		root.AddDomainEvent(NewBaseEvent(root.ID(), "test", "test.updated"))
		require.Len(t, root.DomainEvents(), 2)

		root.ClearDomainEvents()
		assert.Empty(t, root.DomainEvents())
	})

	t.Run("rehydrated aggregate starts without events", func(t *testing.T) {
		base := RehydrateBaseEntity(uuid.New(), time.Now(), time.Now())
		root := RehydrateBaseAggregateRoot(base)

		assert.Empty(t, root.DomainEvents())
	})
}

func TestBaseEvent(t *testing.T) {
	aggregateID := uuid.New()
	event := NewBaseEvent(aggregateID, "task", "tasks.task.created")

	assert.NotEqual(t, uuid.Nil, event.EventID())
	assert.Equal(t, aggregateID, event.AggregateID())
	assert.Equal(t, "task", event.AggregateType())
	assert.Equal(t, "tasks.task.created", event.RoutingKey())
	assert.False(t, event.OccurredAt().IsZero())
}

// Package eventbus delivers domain events to interested consumers.
// The service runs single-process, so delivery is in-process and
// synchronous; the Publisher interface keeps command handlers unaware
// of the delivery mechanism.
package eventbus

import (
	"context"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/shared/domain"
)

// Publisher publishes domain events after an aggregate has been saved.
type Publisher interface {
	Publish(ctx context.Context, events ...domain.DomainEvent) error
}

// LogPublisher records every event through the structured logger. It is
// the default publisher wired by the container.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher backed by the given logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

// Publish logs each event with its routing key and aggregate identity.
func (p *LogPublisher) Publish(ctx context.Context, events ...domain.DomainEvent) error {
	for _, event := range events {
		p.logger.InfoContext(ctx, "domain event",
			"routing_key", event.RoutingKey(),
			"aggregate_type", event.AggregateType(),
			"aggregate_id", event.AggregateID().String(),
			"event_id", event.EventID().String(),
		)
	}
	return nil
}

// NopPublisher discards all events. Useful in tests.
type NopPublisher struct{}

// Publish discards the events.
func (NopPublisher) Publish(ctx context.Context, events ...domain.DomainEvent) error {
	return nil
}

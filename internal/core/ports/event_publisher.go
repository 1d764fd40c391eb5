package ports

import "context"

// EventPublisher delivers a committed domain event to the outside world.
// Implementations must be safe for concurrent use; the relay job retries
// a message on the next tick when Publish fails.
type EventPublisher interface {
	Publish(ctx context.Context, eventName string, aggregateID string, payload []byte) error
}

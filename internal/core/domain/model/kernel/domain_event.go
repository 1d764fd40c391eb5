package kernel

// DomainEvent is an immutable record of something that happened inside an
// aggregate. Aggregates append events to themselves after each mutating call;
// an external dispatcher is responsible for delivery. The core never invokes
// a dispatcher directly.
type DomainEvent interface {
	// EventName returns the stable name of the event type, used for routing
	// and for outbox persistence.
	EventName() string
}

// EventSource is implemented by aggregates that record domain events.
// The unit of work drains events from tracked aggregates at commit time.
type EventSource interface {
	// DrainEvents returns all recorded events and clears the aggregate's
	// event list.
	DrainEvents() []DomainEvent
}

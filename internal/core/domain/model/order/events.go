package order

import "time"

// CreatedEvent is recorded when a new order enters the system.
type CreatedEvent struct {
	OrderID     string    `json:"orderId"`
	UserID      string    `json:"userId"`
	OrderNumber string    `json:"orderNumber"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// EventName identifies the event type for outbox routing.
func (e CreatedEvent) EventName() string {
	return "OrderCreated"
}

// ShippedEvent is recorded when an order leaves the warehouse.
type ShippedEvent struct {
	OrderID    string    `json:"orderId"`
	ShippedAt  time.Time `json:"shippedAt"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventName identifies the event type for outbox routing.
func (e ShippedEvent) EventName() string {
	return "OrderShipped"
}

// DeliveredEvent is recorded when an order reaches the customer.
type DeliveredEvent struct {
	OrderID     string    `json:"orderId"`
	DeliveredAt time.Time `json:"deliveredAt"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// EventName identifies the event type for outbox routing.
func (e DeliveredEvent) EventName() string {
	return "OrderDelivered"
}

// CancelledEvent is recorded when an order is cancelled, carrying the reason
// supplied by the caller.
type CancelledEvent struct {
	OrderID    string    `json:"orderId"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventName identifies the event type for outbox routing.
func (e CancelledEvent) EventName() string {
	return "OrderCancelled"
}

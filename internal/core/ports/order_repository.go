package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations use optimistic concurrency: Update matches on the version
// the aggregate was loaded with and fails with a conflict error if another
// writer got there first.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns an object-not-found error if the order does not exist and a
	// concurrency-conflict error if the stored version no longer matches
	// the version the aggregate was loaded with.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

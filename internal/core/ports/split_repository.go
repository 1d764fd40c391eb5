package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/split"
)

// OrderSplitRepository defines the persistence contract for split audit
// records. Splits are written once and read for audit, never updated.
type OrderSplitRepository interface {
	// Add persists a new split record with its item transfers.
	Add(ctx context.Context, aggregate *split.OrderSplit) error

	// Get retrieves a split record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*split.OrderSplit, error)

	// GetByOriginalOrder retrieves all split records carved out of the given
	// order, most recent first.
	GetByOriginalOrder(ctx context.Context, orderID kernel.UUID) ([]*split.OrderSplit, error)
}

package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
)

// ProductRepository defines the read contract for catalog products.
// The commerce core never writes products; the catalog subsystem owns them.
type ProductRepository interface {
	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

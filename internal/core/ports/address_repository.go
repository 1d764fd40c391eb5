package ports

import (
	"context"

	"commerce/internal/core/domain/model/address"
	"commerce/internal/core/domain/model/kernel"
)

// AddressRepository defines the read contract for shipping addresses.
type AddressRepository interface {
	// Get retrieves an address by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*address.Address, error)
}

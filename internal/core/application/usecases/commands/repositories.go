// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SplitRepoFactory provides access to the split repository within a transaction.
	SplitRepoFactory interface {
		SplitRepository() ports.OrderSplitRepository
	}

	// ProductRepoFactory provides read access to catalog products within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SplitUoW manages transactions spanning order and split aggregates,
	// with read access to the catalog for product existence checks.
	// Used by the split command, which writes the new order, the shrunk
	// original, and the audit record atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   splitRepo := uow.SplitRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	SplitUoW interface {
		TxManager
		OrderRepoFactory
		SplitRepoFactory
		ProductRepoFactory
	}

	// SplitUoWFactory creates new unit of work instances for split operations.
	SplitUoWFactory interface {
		Create() SplitUoW
	}
)

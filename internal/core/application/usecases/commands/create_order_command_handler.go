package commands

import (
	"context"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the shipping address and opens the order in Pending status with
// an empty item collection.
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	addressRepo ports.AddressRepository
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and an address
// repository to prove the shipping address exists.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, addressRepo ports.AddressRepository) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		addressRepo: addressRepo,
	}
}

// Handle processes the order creation command.
// The referenced address must exist; the order starts Pending with zero
// totals. Uses a transaction to ensure the order is persisted or rolled back
// on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	shippingAddress, err := h.addressRepo.Get(ctx, cmd.AddressID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), cmd.AddressID(), shippingAddress)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

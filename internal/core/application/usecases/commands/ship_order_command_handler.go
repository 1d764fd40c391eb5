package commands

import (
	"context"
)

// ShipOrderCommandHandler moves a processing order to Shipped. The status
// machine rejects the move from any other state, the shipping timestamp is
// stamped, and the shipped event lands in the outbox with the state change.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewShipOrderCommandHandler creates a handler for the ship operation.
func NewShipOrderCommandHandler(uowFactory OrderUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, ships it, and persists the updated aggregate with
// its version check.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Ship(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

package commands

import (
	"context"

	"commerce/internal/core/ports"
)

// AddOrderItemCommandHandler handles adding product units to a pending order.
// The product's current effective price and stock level are read from the
// catalog at handling time.
type AddOrderItemCommandHandler struct {
	uowFactory  OrderUoWFactory
	productRepo ports.ProductRepository
}

// NewAddOrderItemCommandHandler creates a handler for the add-item operation.
func NewAddOrderItemCommandHandler(uowFactory OrderUoWFactory, productRepo ports.ProductRepository) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory:  uowFactory,
		productRepo: productRepo,
	}
}

// Handle loads the order and the product, applies the domain rules for item
// addition, and persists the updated aggregate with its version check.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := h.productRepo.Get(ctx, cmd.ProductID())
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
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(product, cmd.Quantity()); err != nil {
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

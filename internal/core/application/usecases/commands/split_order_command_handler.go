package commands

import (
	"context"
	"fmt"

	"commerce/internal/core/domain/model/address"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/split"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// SplitOrderResult reports the outcome of a completed split.
type SplitOrderResult struct {
	// OriginalOrderID is the order the units were carved out of.
	OriginalOrderID kernel.UUID
	// SplitOrderID is the new order carrying the moved units.
	SplitOrderID kernel.UUID
	// SplitID is the audit record written for the operation.
	SplitID kernel.UUID
	// OriginalTotal is the original order's total after the split.
	OriginalTotal kernel.Money
	// SplitTotal is the new order's total.
	SplitTotal kernel.Money
}

// SplitOrderCommandHandler carves part of an order out into a new order.
//
// The operation is atomic: the new order, the shrunk original, and the audit
// record are persisted in one transaction, so a failure anywhere leaves all
// three untouched. Every precondition is checked against the loaded order
// before the first mutation:
//
//   - the original must be Pending or Processing
//   - every selected line must exist on the original
//   - every selection must leave at least one unit on its line
//   - the catalog product behind every selected line must still exist
//   - a replacement address, when given, must exist
//
// The moved units keep the unit price captured on the original line, so the
// combined item value of the two orders equals the original's item value.
// The new order ships at the original's shipping cost, and the original's
// tax is apportioned between the two orders by subtotal, using the subtotal
// captured before any units moved.
type SplitOrderCommandHandler struct {
	uowFactory  SplitUoWFactory
	addressRepo ports.AddressRepository
}

// NewSplitOrderCommandHandler creates a handler for the split operation.
func NewSplitOrderCommandHandler(uowFactory SplitUoWFactory, addressRepo ports.AddressRepository) SplitOrderCommandHandler {
	return SplitOrderCommandHandler{
		uowFactory:  uowFactory,
		addressRepo: addressRepo,
	}
}

// Handle performs the split and returns the identifiers and totals of the
// resulting orders.
func (h *SplitOrderCommandHandler) Handle(ctx context.Context, cmd SplitOrderCommand) (SplitOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SplitOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SplitOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	original, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return SplitOrderResult{}, err
	}

	if original.Status() != order.Pending && original.Status() != order.Processing {
		return SplitOrderResult{}, errs.NewDomainRuleViolationErrorWithCause(
			"only pending or processing orders can be split",
			fmt.Errorf("order %s has status %s", original.ID(), original.Status()),
		)
	}

	// All preconditions are verified before the first mutation so a failed
	// split never leaves a half-moved order in memory.
	productRepo := uow.ProductRepository()
	originalItems := make([]*order.Item, len(cmd.Selections()))
	remaining := make([]int, len(cmd.Selections()))
	for idx, selection := range cmd.Selections() {
		item, err := original.Item(selection.ItemID())
		if err != nil {
			return SplitOrderResult{}, err
		}

		if selection.Quantity() > item.Quantity() {
			return SplitOrderResult{}, errs.NewValueIsOutOfRangeError(
				"quantity", selection.Quantity(), 1, item.Quantity()-1,
			)
		}
		if selection.Quantity() == item.Quantity() {
			return SplitOrderResult{}, errs.NewValueIsInvalidErrorWithCause(
				"quantity is invalid",
				fmt.Errorf("moving all %d units would empty line %s", item.Quantity(), item.ID()),
			)
		}

		if _, err = productRepo.Get(ctx, item.ProductID()); err != nil {
			return SplitOrderResult{}, err
		}

		originalItems[idx] = item
		remaining[idx] = item.Quantity() - selection.Quantity()
	}

	shippingAddress, addressID, err := h.resolveAddress(ctx, cmd, original)
	if err != nil {
		return SplitOrderResult{}, err
	}

	// Captured before any quantity moves; the tax apportionment below must
	// see the original proportions.
	originalSubTotal := original.SubTotal()
	originalTax := original.Tax()

	splitOrder, err := order.NewOrder(kernel.NewUUID(), original.UserID(), addressID, shippingAddress)
	if err != nil {
		return SplitOrderResult{}, err
	}
	if err = splitOrder.LinkParent(original.ID()); err != nil {
		return SplitOrderResult{}, err
	}

	record, err := split.NewOrderSplit(kernel.NewUUID(), original.ID(), splitOrder.ID(), cmd.Reason(), cmd.NewAddressID())
	if err != nil {
		return SplitOrderResult{}, err
	}

	for idx, selection := range cmd.Selections() {
		item := originalItems[idx]

		splitItem, err := splitOrder.AddTransferredItem(item.ProductID(), selection.Quantity(), item.UnitPrice())
		if err != nil {
			return SplitOrderResult{}, err
		}

		if err = original.UpdateItemQuantity(item.ID(), remaining[idx]); err != nil {
			return SplitOrderResult{}, err
		}

		if err = record.RecordTransfer(item.ID(), splitItem.ID(), selection.Quantity()); err != nil {
			return SplitOrderResult{}, err
		}
	}

	if len(record.Items()) != len(cmd.Selections()) {
		return SplitOrderResult{}, errs.NewDomainRuleViolationErrorWithCause(
			"split audit record is incomplete",
			fmt.Errorf("%d transfers recorded for %d selections", len(record.Items()), len(cmd.Selections())),
		)
	}

	// Cross-check each transfer against the line it created on the new
	// order. A mismatch means the move logic itself is faulty and nothing
	// may be persisted.
	for idx, transfer := range record.Items() {
		item := originalItems[idx]

		splitItem, itemErr := splitOrder.Item(transfer.SplitItemID())
		if itemErr != nil {
			return SplitOrderResult{}, errs.NewDomainRuleViolationErrorWithCause(
				"split audit record does not match the new order", itemErr,
			)
		}
		if !splitItem.ProductID().IsEqual(item.ProductID()) || splitItem.Quantity() != transfer.Quantity() {
			return SplitOrderResult{}, errs.NewDomainRuleViolationErrorWithCause(
				"split audit record does not match the new order",
				fmt.Errorf("transfer of line %s expected %d units of product %s, new order line carries %d units of product %s",
					item.ID(), transfer.Quantity(), item.ProductID(), splitItem.Quantity(), splitItem.ProductID()),
			)
		}
	}

	if err = splitOrder.SetShippingCost(original.ShippingCost()); err != nil {
		return SplitOrderResult{}, err
	}

	splitTax := originalTax.Apportion(splitOrder.SubTotal(), originalSubTotal)
	remainingTax, err := originalTax.Subtract(splitTax)
	if err != nil {
		return SplitOrderResult{}, err
	}
	if err = splitOrder.SetTax(splitTax); err != nil {
		return SplitOrderResult{}, err
	}
	if err = original.SetTax(remainingTax); err != nil {
		return SplitOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, splitOrder); err != nil {
		return SplitOrderResult{}, err
	}
	if err = orderRepo.Update(ctx, original); err != nil {
		return SplitOrderResult{}, err
	}
	if err = uow.SplitRepository().Add(ctx, record); err != nil {
		return SplitOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SplitOrderResult{}, err
	}

	return SplitOrderResult{
		OriginalOrderID: original.ID(),
		SplitOrderID:    splitOrder.ID(),
		SplitID:         record.ID(),
		OriginalTotal:   original.TotalAmount(),
		SplitTotal:      splitOrder.TotalAmount(),
	}, nil
}

// resolveAddress loads the split order's shipping address: the replacement
// when the command names one, the original order's address otherwise.
func (h *SplitOrderCommandHandler) resolveAddress(
	ctx context.Context,
	cmd SplitOrderCommand,
	original *order.Order,
) (*address.Address, kernel.UUID, error) {
	addressID := original.AddressID()
	if cmd.NewAddressID() != nil {
		addressID = *cmd.NewAddressID()
	}

	shippingAddress, err := h.addressRepo.Get(ctx, addressID)
	if err != nil {
		return nil, kernel.UUID{}, err
	}

	return shippingAddress, addressID, nil
}

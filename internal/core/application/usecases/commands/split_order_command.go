package commands

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var (
	ErrSplitOrderCommandIsNotConstructed = errors.New(
		"SplitOrderCommand must be created via NewSplitOrderCommand constructor",
	)
	ErrItemSelectionIsNotConstructed = errors.New(
		"ItemSelection must be created via NewItemSelection constructor",
	)
)

// ItemSelection names one line of the original order and the number of units
// to carve out of it.
type ItemSelection struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewItemSelection creates a selection with validation. Quantity must be
// positive; whether it fits the targeted line is checked by the handler
// against the loaded order.
func NewItemSelection(itemID kernel.UUID, quantity int) (ItemSelection, error) {
	selection := ItemSelection{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		selection.setItemID(itemID),
		selection.setQuantity(quantity),
	); err != nil {
		return ItemSelection{}, err
	}

	return selection, nil
}

// Validate ensures the selection was created through the constructor.
func (s ItemSelection) Validate() error {
	return s.guard.Validate(ErrItemSelectionIsNotConstructed)
}

// ItemID returns the identifier of the targeted order line.
func (s ItemSelection) ItemID() kernel.UUID {
	return s.itemID
}

// Quantity returns the number of units to move.
func (s ItemSelection) Quantity() int {
	return s.quantity
}

func (s *ItemSelection) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	s.itemID = itemID
	return nil
}

func (s *ItemSelection) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	s.quantity = quantity
	return nil
}

// SplitOrderCommand represents a request to carve part of an order out into
// a new order, leaving an audit record behind. The new address is optional:
// nil means the split order ships to the original address.
//
// Example:
//
//	selection, _ := NewItemSelection(itemID, 3)
//	cmd, err := NewSplitOrderCommand(orderID, []ItemSelection{selection}, "partial backorder", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid split request: %w", err)
//	}
//
//	handler := NewSplitOrderCommandHandler(uowFactory, addressRepo)
//	result, err := handler.Handle(ctx, cmd)
type SplitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	selections   []ItemSelection
	reason       string
	newAddressID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSplitOrderCommand creates a split command with validation. At least one
// selection is required and no line may be selected twice.
func NewSplitOrderCommand(
	orderID kernel.UUID,
	selections []ItemSelection,
	reason string,
	newAddressID *kernel.UUID,
) (SplitOrderCommand, error) {
	cmd := SplitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSelections(selections),
		cmd.setNewAddressID(newAddressID),
	); err != nil {
		return SplitOrderCommand{}, err
	}

	cmd.reason = reason

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SplitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSplitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to split.
func (c SplitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Selections returns the lines and quantities to carve out.
func (c SplitOrderCommand) Selections() []ItemSelection {
	selections := make([]ItemSelection, len(c.selections))
	copy(selections, c.selections)
	return selections
}

// Reason returns the caller-supplied reason for the split, possibly empty.
func (c SplitOrderCommand) Reason() string {
	return c.reason
}

// NewAddressID returns the shipping address for the split order, or nil to
// inherit the original address.
func (c SplitOrderCommand) NewAddressID() *kernel.UUID {
	return c.newAddressID
}

func (c *SplitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SplitOrderCommand) setSelections(selections []ItemSelection) error {
	if len(selections) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]struct{}, len(selections))
	for _, selection := range selections {
		if err := selection.Validate(); err != nil {
			return err
		}
		if _, ok := seen[selection.ItemID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"items is invalid",
				fmt.Errorf("line %s is selected more than once", selection.ItemID()),
			)
		}
		seen[selection.ItemID()] = struct{}{}
	}

	c.selections = make([]ItemSelection, len(selections))
	copy(c.selections, selections)
	return nil
}

func (c *SplitOrderCommand) setNewAddressID(newAddressID *kernel.UUID) error {
	if newAddressID == nil {
		return nil
	}
	if err := newAddressID.Validate(); err != nil {
		return err
	}

	addrID := *newAddressID
	c.newAddressID = &addrID
	return nil
}

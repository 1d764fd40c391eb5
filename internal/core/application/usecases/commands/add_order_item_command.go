package commands

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to add units of a product to a
// pending order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an order line.
// Validates that identifiers are constructed and quantity is positive.
func NewAddOrderItemCommand(orderID, productID kernel.UUID, quantity int) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the product to add.
func (c AddOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}

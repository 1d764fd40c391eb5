package order

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is an order line: a product reference, the quantity ordered, and the
// unit price captured at the moment the line was added. The line total is
// derived and never stored independently of quantity and unit price.
type Item struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
	lineTotal kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line with validation. Quantity must be positive.
func NewItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	if err := item.setQuantity(quantity); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an order line from persistence. The line total is
// recomputed from quantity and unit price rather than trusted from storage.
func RestoreItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	return NewItem(id, productID, quantity, unitPrice)
}

// Validate ensures the Item was created through a factory function.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the product this line refers to.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units on the line.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured when the line was added.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns unitPrice * quantity.
func (i *Item) LineTotal() kernel.Money {
	return i.lineTotal
}

// ChangeQuantity replaces the line quantity and recomputes the line total.
// The quantity must stay positive; a line that would reach zero has to be
// removed from the order instead.
func (i *Item) ChangeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

// IsEqual compares two items by identity.
func (i *Item) IsEqual(other *Item) bool {
	if other == nil {
		return false
	}
	return i.id.IsEqual(other.id)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	lineTotal, err := i.unitPrice.MultiplyBy(quantity)
	if err != nil {
		return err
	}

	i.quantity = quantity
	i.lineTotal = lineTotal
	return nil
}

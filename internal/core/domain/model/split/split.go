// Package split provides the OrderSplit aggregate: the immutable audit
// record left behind when part of an order is carved out into a new one.
// An OrderSplit links the original order, the split order, and the per-item
// quantity transfers, so the full history of a split can be reconstructed
// later.
package split

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrSplitIsNotConstructed is returned when an OrderSplit instance was not
// created through the NewOrderSplit or RestoreOrderSplit factory functions.
var ErrSplitIsNotConstructed = errors.New("OrderSplit must be created via NewOrderSplit or RestoreOrderSplit")

// ErrSplitItemIsNotConstructed is returned when an Item instance was not
// created through the NewItem or RestoreItem factory functions.
var ErrSplitItemIsNotConstructed = errors.New("split Item must be created via NewItem or RestoreItem")

// OrderSplit records one split operation. It is written once, inside the
// same transaction that persists the two orders, and never mutated after.
type OrderSplit struct {
	id              kernel.UUID
	originalOrderID kernel.UUID
	splitOrderID    kernel.UUID
	reason          string
	newAddressID    *kernel.UUID
	createdAt       time.Time
	items           []*Item

	guard guard.ConstructorGuard
}

// Item links one original order line to the line carved out of it,
// carrying the quantity that moved.
type Item struct {
	id             kernel.UUID
	splitID        kernel.UUID
	originalItemID kernel.UUID
	splitItemID    kernel.UUID
	quantity       int

	guard guard.ConstructorGuard
}

// NewOrderSplit creates the audit record for a split. The two order
// identifiers must differ, at least one item transfer is required, and the
// new address is optional: nil means the split order inherited the original
// shipping address.
func NewOrderSplit(
	id kernel.UUID,
	originalOrderID kernel.UUID,
	splitOrderID kernel.UUID,
	reason string,
	newAddressID *kernel.UUID,
) (*OrderSplit, error) {
	s := &OrderSplit{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderIDs(originalOrderID, splitOrderID),
	); err != nil {
		return nil, err
	}

	if newAddressID != nil {
		if err := newAddressID.Validate(); err != nil {
			return nil, err
		}
		addrID := *newAddressID
		s.newAddressID = &addrID
	}

	s.reason = reason
	s.createdAt = time.Now().UTC()

	return s, nil
}

// RestoreOrderSplit reconstructs an OrderSplit from persistence.
func RestoreOrderSplit(
	id kernel.UUID,
	originalOrderID kernel.UUID,
	splitOrderID kernel.UUID,
	reason string,
	newAddressID *kernel.UUID,
	createdAt time.Time,
	items []*Item,
) (*OrderSplit, error) {
	s, err := NewOrderSplit(id, originalOrderID, splitOrderID, reason, newAddressID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	s.items = items
	s.createdAt = createdAt

	return s, nil
}

// Validate ensures the OrderSplit was created through a factory function.
func (s *OrderSplit) Validate() error {
	if s == nil {
		return ErrSplitIsNotConstructed
	}
	return s.guard.Validate(ErrSplitIsNotConstructed)
}

// ID returns the split record's unique identifier.
func (s *OrderSplit) ID() kernel.UUID {
	return s.id
}

// OriginalOrderID returns the identifier of the order that was split.
func (s *OrderSplit) OriginalOrderID() kernel.UUID {
	return s.originalOrderID
}

// SplitOrderID returns the identifier of the order carved out by the split.
func (s *OrderSplit) SplitOrderID() kernel.UUID {
	return s.splitOrderID
}

// Reason returns the caller-supplied reason for the split.
func (s *OrderSplit) Reason() string {
	return s.reason
}

// NewAddressID returns the shipping address assigned to the split order,
// or nil when the split order inherited the original address.
func (s *OrderSplit) NewAddressID() *kernel.UUID {
	return s.newAddressID
}

// CreatedAt returns the time the split was performed.
func (s *OrderSplit) CreatedAt() time.Time {
	return s.createdAt
}

// Items returns a copy of the per-item transfer records.
func (s *OrderSplit) Items() []*Item {
	items := make([]*Item, len(s.items))
	copy(items, s.items)
	return items
}

// RecordTransfer appends a per-item transfer linking an original line to the
// line carved out of it.
func (s *OrderSplit) RecordTransfer(originalItemID, splitItemID kernel.UUID, quantity int) error {
	item, err := NewItem(kernel.NewUUID(), s.id, originalItemID, splitItemID, quantity)
	if err != nil {
		return err
	}
	s.items = append(s.items, item)
	return nil
}

func (s *OrderSplit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *OrderSplit) setOrderIDs(originalOrderID, splitOrderID kernel.UUID) error {
	if err := errors.Join(originalOrderID.Validate(), splitOrderID.Validate()); err != nil {
		return err
	}
	if originalOrderID.IsEqual(splitOrderID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"splitOrderId is invalid",
			fmt.Errorf("order %s cannot be split into itself", originalOrderID),
		)
	}
	s.originalOrderID = originalOrderID
	s.splitOrderID = splitOrderID
	return nil
}

// NewItem creates a transfer record with validation. The moved quantity must
// be positive.
func NewItem(id, splitID, originalItemID, splitItemID kernel.UUID, quantity int) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setSplitID(splitID),
		item.setItemIDs(originalItemID, splitItemID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a transfer record from persistence.
func RestoreItem(id, splitID, originalItemID, splitItemID kernel.UUID, quantity int) (*Item, error) {
	return NewItem(id, splitID, originalItemID, splitItemID, quantity)
}

// Validate ensures the Item was created through a factory function.
func (i *Item) Validate() error {
	if i == nil {
		return ErrSplitItemIsNotConstructed
	}
	return i.guard.Validate(ErrSplitItemIsNotConstructed)
}

// ID returns the transfer record's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// SplitID returns the identifier of the owning OrderSplit.
func (i *Item) SplitID() kernel.UUID {
	return i.splitID
}

// OriginalItemID returns the identifier of the line on the original order.
func (i *Item) OriginalItemID() kernel.UUID {
	return i.originalItemID
}

// SplitItemID returns the identifier of the line on the split order.
func (i *Item) SplitItemID() kernel.UUID {
	return i.splitItemID
}

// Quantity returns the number of units that moved.
func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setSplitID(splitID kernel.UUID) error {
	if err := splitID.Validate(); err != nil {
		return err
	}
	i.splitID = splitID
	return nil
}

func (i *Item) setItemIDs(originalItemID, splitItemID kernel.UUID) error {
	if err := errors.Join(originalItemID.Validate(), splitItemID.Validate()); err != nil {
		return err
	}
	i.originalItemID = originalItemID
	i.splitItemID = splitItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"commerce/internal/core/domain/model/address"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the commerce core. It owns its item
// collection, keeps the monetary totals consistent, and guards every state
// change behind the status machine.
//
// Invariants held after every mutation:
//   - subTotal equals the sum of the item line totals
//   - totalAmount equals subTotal + shippingCost + tax
//   - status only changes along the transitions Status permits
//
// Use NewOrder to create instances, RestoreOrder to reconstruct from storage.
type Order struct {
	id          kernel.UUID
	userID      kernel.UUID
	addressID   kernel.UUID
	orderNumber string

	status        Status
	paymentStatus PaymentStatus

	items []*Item

	subTotal     kernel.Money
	shippingCost kernel.Money
	tax          kernel.Money
	totalAmount  kernel.Money

	shippedAt     *time.Time
	deliveredAt   *time.Time
	parentOrderID *kernel.UUID

	version int

	events []kernel.DomainEvent

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in the Pending status with an empty item
// collection and zero totals. The shipping address must be a constructed
// Address whose identifier matches addressID, proving the reference resolves
// to something real. A CreatedEvent is recorded.
func NewOrder(id kernel.UUID, userID kernel.UUID, addressID kernel.UUID, shippingAddress *address.Address) (*Order, error) {
	if err := shippingAddress.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setAddressID(addressID),
	); err != nil {
		return nil, err
	}

	if !shippingAddress.ID().IsEqual(addressID) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"addressId is invalid",
			fmt.Errorf("address %s does not match addressId %s", shippingAddress.ID(), addressID),
		)
	}

	o.orderNumber = newOrderNumber(id)
	o.status = Pending
	o.paymentStatus = PaymentPending
	o.subTotal = kernel.Zero()
	o.shippingCost = kernel.Zero()
	o.tax = kernel.Zero()
	o.totalAmount = kernel.Zero()

	o.recordEvent(CreatedEvent{
		OrderID:     o.id.String(),
		UserID:      o.userID.String(),
		OrderNumber: o.orderNumber,
		OccurredAt:  time.Now().UTC(),
	})

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without recording
// events. The totals are recalculated from the restored items so a stale
// stored total can never survive a load.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	addressID kernel.UUID,
	orderNumber string,
	status Status,
	paymentStatus PaymentStatus,
	items []*Item,
	shippingCost kernel.Money,
	tax kernel.Money,
	shippedAt *time.Time,
	deliveredAt *time.Time,
	parentOrderID *kernel.UUID,
	version int,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setAddressID(addressID),
		o.setOrderNumber(orderNumber),
		o.setStatus(status),
		o.setPaymentStatus(paymentStatus),
		o.setItems(items),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	o.shippingCost = shippingCost
	o.tax = tax
	o.shippedAt = shippedAt
	o.deliveredAt = deliveredAt

	if parentOrderID != nil {
		if err := parentOrderID.Validate(); err != nil {
			return nil, err
		}
		o.parentOrderID = parentOrderID
	}

	if err := o.recalculateTotals(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the customer who owns the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// AddressID returns the identifier of the shipping address.
func (o *Order) AddressID() kernel.UUID {
	return o.addressID
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Items returns a copy of the item collection. Mutating the returned slice
// does not affect the order.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item finds an order line by its identifier.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("itemId", itemID)
}

// ItemByProduct finds an order line by the product it refers to.
func (o *Order) ItemByProduct(productID kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.ProductID().IsEqual(productID) {
			return item, true
		}
	}
	return nil, false
}

// SubTotal returns the sum of the item line totals.
func (o *Order) SubTotal() kernel.Money {
	return o.subTotal
}

// ShippingCost returns the shipping charge.
func (o *Order) ShippingCost() kernel.Money {
	return o.shippingCost
}

// Tax returns the tax charge.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// TotalAmount returns subTotal + shippingCost + tax.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// ShippedAt returns the shipping timestamp, nil until the order ships.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns the delivery timestamp, nil until the order is delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ParentOrderID returns the originating order's identifier when this order
// was carved out by a split, nil otherwise.
func (o *Order) ParentOrderID() *kernel.UUID {
	return o.parentOrderID
}

// Version returns the optimistic concurrency version loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	if other == nil {
		return false
	}
	return o.id.IsEqual(other.id)
}

// AddItem adds quantity units of the product to the order. If a line for the
// same product already exists the quantities merge and the existing line
// keeps its captured unit price; otherwise a new line is appended at the
// product's effective price. Only pending orders accept new items, and the
// product must have enough stock to cover the quantity.
func (o *Order) AddItem(p *product.Product, quantity int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if o.status != Pending {
		return errs.NewDomainRuleViolationErrorWithCause(
			"order not in a pending state",
			fmt.Errorf("order %s has status %s", o.id, o.status),
		)
	}

	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if p.Stock() < quantity {
		return errs.NewDomainRuleViolationErrorWithCause(
			"insufficient stock",
			fmt.Errorf("product %s has %d units, %d requested", p.ID(), p.Stock(), quantity),
		)
	}

	if existing, ok := o.ItemByProduct(p.ID()); ok {
		if err := existing.ChangeQuantity(existing.Quantity() + quantity); err != nil {
			return err
		}
		return o.recalculateTotals()
	}

	item, err := NewItem(kernel.NewUUID(), p.ID(), quantity, p.EffectivePrice())
	if err != nil {
		return err
	}
	o.items = append(o.items, item)

	return o.recalculateTotals()
}

// AddTransferredItem adds quantity units of a product at a fixed unit price,
// merging into an existing line for the same product when one exists. It is
// used when units move between orders during a split: the units were already
// sold at the captured price, so no catalog lookup and no stock check happen
// here. Returns the line the units landed on. Only pending orders accept
// transfers.
func (o *Order) AddTransferredItem(productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	if o.status != Pending {
		return nil, errs.NewDomainRuleViolationErrorWithCause(
			"order not in a pending state",
			fmt.Errorf("order %s has status %s", o.id, o.status),
		)
	}

	if err := productID.Validate(); err != nil {
		return nil, err
	}

	if existing, ok := o.ItemByProduct(productID); ok {
		if err := existing.ChangeQuantity(existing.Quantity() + quantity); err != nil {
			return nil, err
		}
		if err := o.recalculateTotals(); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item, err := NewItem(kernel.NewUUID(), productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	o.items = append(o.items, item)

	if err := o.recalculateTotals(); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes the identified line from a pending order.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if o.status != Pending {
		return errs.NewDomainRuleViolationErrorWithCause(
			"order not in a pending state",
			fmt.Errorf("order %s has status %s", o.id, o.status),
		)
	}

	for idx, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return o.recalculateTotals()
		}
	}

	return errs.NewObjectNotFoundError("itemId", itemID)
}

// UpdateItemQuantity replaces the quantity of an existing line and
// recalculates the totals. The quantity must stay positive: a line is
// shrunk, never zeroed. Allowed while the order is Pending or Processing,
// which lets a split shrink lines on an order already being prepared.
func (o *Order) UpdateItemQuantity(itemID kernel.UUID, quantity int) error {
	if o.status != Pending && o.status != Processing {
		return errs.NewDomainRuleViolationErrorWithCause(
			"order items can no longer be adjusted",
			fmt.Errorf("order %s has status %s", o.id, o.status),
		)
	}

	item, err := o.Item(itemID)
	if err != nil {
		return err
	}

	if err := item.ChangeQuantity(quantity); err != nil {
		return err
	}

	return o.recalculateTotals()
}

// SetShippingCost replaces the shipping charge and recalculates the totals.
func (o *Order) SetShippingCost(cost kernel.Money) error {
	o.shippingCost = cost
	return o.recalculateTotals()
}

// SetTax replaces the tax charge and recalculates the totals.
func (o *Order) SetTax(tax kernel.Money) error {
	o.tax = tax
	return o.recalculateTotals()
}

// Confirm moves the order from Pending to Processing.
func (o *Order) Confirm() error {
	return o.transitionTo(Processing)
}

// Ship moves the order to Shipped, stamps the shipping time, and records a
// ShippedEvent.
func (o *Order) Ship() error {
	if err := o.transitionTo(Shipped); err != nil {
		return err
	}

	now := time.Now().UTC()
	o.shippedAt = &now

	o.recordEvent(ShippedEvent{
		OrderID:    o.id.String(),
		ShippedAt:  now,
		OccurredAt: now,
	})
	return nil
}

// Deliver moves the order to Delivered, stamps the delivery time, and records
// a DeliveredEvent.
func (o *Order) Deliver() error {
	if err := o.transitionTo(Delivered); err != nil {
		return err
	}

	now := time.Now().UTC()
	o.deliveredAt = &now

	o.recordEvent(DeliveredEvent{
		OrderID:     o.id.String(),
		DeliveredAt: now,
		OccurredAt:  now,
	})
	return nil
}

// Cancel moves the order to Cancelled and records a CancelledEvent carrying
// the reason. Orders that already shipped cannot be cancelled.
func (o *Order) Cancel(reason string) error {
	if o.status == Shipped || o.status == Delivered {
		return errs.NewDomainRuleViolationErrorWithCause(
			"shipped or delivered order cannot be cancelled",
			fmt.Errorf("order %s has status %s", o.id, o.status),
		)
	}

	if err := o.transitionTo(Cancelled); err != nil {
		return err
	}

	o.recordEvent(CancelledEvent{
		OrderID:    o.id.String(),
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// Refund moves a delivered order to Refunded and marks the payment refunded.
func (o *Order) Refund() error {
	if err := o.transitionTo(Refunded); err != nil {
		return err
	}
	o.paymentStatus = PaymentRefunded
	return nil
}

// PutOnHold suspends a pending order.
func (o *Order) PutOnHold() error {
	return o.transitionTo(OnHold)
}

// Resume moves a held order back into Processing.
func (o *Order) Resume() error {
	return o.transitionTo(Processing)
}

// MarkPaid records a confirmed payment. Only a pending payment can be paid.
func (o *Order) MarkPaid() error {
	if o.paymentStatus != PaymentPending {
		return errs.NewDomainRuleViolationErrorWithCause(
			"payment already settled",
			fmt.Errorf("order %s has payment status %s", o.id, o.paymentStatus),
		)
	}
	o.paymentStatus = PaymentPaid
	return nil
}

// LinkParent marks this order as carved out of parentID by a split.
func (o *Order) LinkParent(parentID kernel.UUID) error {
	if err := parentID.Validate(); err != nil {
		return err
	}
	if parentID.IsEqual(o.id) {
		return errs.NewValueIsInvalidErrorWithCause(
			"parentOrderId is invalid",
			fmt.Errorf("order %s cannot be its own parent", o.id),
		)
	}
	o.parentOrderID = &parentID
	return nil
}

// DrainEvents returns the recorded domain events and clears the internal
// list. Implements kernel.EventSource.
func (o *Order) DrainEvents() []kernel.DomainEvent {
	events := o.events
	o.events = nil
	return events
}

// transitionTo delegates to the status machine; on an illegal move the
// order's status stays unchanged and the error is surfaced.
func (o *Order) transitionTo(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// recalculateTotals rebuilds subTotal from the item line totals and derives
// totalAmount. Every mutating method ends here.
func (o *Order) recalculateTotals() error {
	subTotal := kernel.Zero()
	for _, item := range o.items {
		subTotal = subTotal.Add(item.LineTotal())
	}
	o.subTotal = subTotal
	o.totalAmount = o.subTotal.Add(o.shippingCost).Add(o.tax)

	return nil
}

func (o *Order) recordEvent(event kernel.DomainEvent) {
	o.events = append(o.events, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setAddressID(addressID kernel.UUID) error {
	if err := addressID.Validate(); err != nil {
		return err
	}
	o.addressID = addressID
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"version is invalid",
			fmt.Errorf("%d is negative", version),
		)
	}
	o.version = version
	return nil
}

// newOrderNumber derives a short human-readable number from the order's
// identifier, e.g. "ORD-1B4E28B4".
func newOrderNumber(id kernel.UUID) string {
	compact := strings.ReplaceAll(id.String(), "-", "")
	return "ORD-" + strings.ToUpper(compact[:8])
}

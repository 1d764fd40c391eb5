// Package queries contains read operations of the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning plain response structs shaped for presentation.
package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its lines.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//	order, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderItemResponse represents one order line in a query response.
// Monetary amounts are in minor currency units.
type OrderItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice int64
	LineTotal int64
}

// GetOrderQueryResponse represents a complete order in a query response.
// Monetary amounts are in minor currency units.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	Status        string
	PaymentStatus string
	SubTotal      int64
	ShippingCost  int64
	Tax           int64
	TotalAmount   int64
	ParentOrderID *kernel.UUID
	Items         []OrderItemResponse
}

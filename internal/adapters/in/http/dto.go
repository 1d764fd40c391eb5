package http

import "github.com/google/uuid"

// Error is the body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	UserID    uuid.UUID `json:"user_id"`
	AddressID uuid.UUID `json:"address_id"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID uuid.UUID `json:"id"`
}

// AddItemRequest is the body of POST /api/v1/orders/{orderId}/items.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/{orderId}/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// SplitSelection names one line of the original order and how many of its
// units move to the new order.
type SplitSelection struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// SplitOrderRequest is the body of POST /api/v1/orders/{orderId}/split.
// NewAddressID is optional; when omitted the new order ships to the
// original's address.
type SplitOrderRequest struct {
	Items        []SplitSelection `json:"items"`
	Reason       string           `json:"reason"`
	NewAddressID *uuid.UUID       `json:"new_address_id,omitempty"`
}

// SplitOrderResponse reports the outcome of a completed split.
// Monetary amounts are in minor currency units.
type SplitOrderResponse struct {
	OriginalOrderID uuid.UUID `json:"original_order_id"`
	SplitOrderID    uuid.UUID `json:"split_order_id"`
	SplitID         uuid.UUID `json:"split_id"`
	OriginalTotal   int64     `json:"original_total"`
	SplitTotal      int64     `json:"split_total"`
}

// OrderItem represents one order line in a response.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice int64     `json:"unit_price"`
	LineTotal int64     `json:"line_total"`
}

// Order represents a complete order in a response.
// Monetary amounts are in minor currency units.
type Order struct {
	ID            uuid.UUID  `json:"id"`
	OrderNumber   string     `json:"order_number"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	SubTotal      int64      `json:"sub_total"`
	ShippingCost  int64      `json:"shipping_cost"`
	Tax           int64      `json:"tax"`
	TotalAmount   int64      `json:"total_amount"`
	ParentOrderID *uuid.UUID  `json:"parent_order_id,omitempty"`
	Items         []OrderItem `json:"items"`
}

// ActiveOrder represents one in-flight order in the active orders listing.
type ActiveOrder struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	TotalAmount int64     `json:"total_amount"`
}

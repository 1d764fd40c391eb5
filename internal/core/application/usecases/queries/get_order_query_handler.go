package queries

import (
	"context"
	"database/sql"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its lines straight from the
// database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no
// order with the given identifier exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			payment_status,
			sub_total,
			shipping_cost,
			tax,
			total_amount,
			parent_order_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var id uuid.UUID
	var status, paymentStatus int
	var parentOrderID *uuid.UUID

	err := row.Scan(
		&id,
		&response.OrderNumber,
		&status,
		&paymentStatus,
		&response.SubTotal,
		&response.ShippingCost,
		&response.Tax,
		&response.TotalAmount,
		&parentOrderID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.ID = orderID
	response.Status = order.Status(status).String()
	response.PaymentStatus = order.PaymentStatus(paymentStatus).String()

	if parentOrderID != nil {
		pID, pErr := kernel.UUIDFromBytes((*parentOrderID)[:])
		if pErr != nil {
			return GetOrderQueryResponse{}, pErr
		}
		response.ParentOrderID = &pID
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	items := make([]OrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price,
			line_total
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var id, productID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&item.Quantity,
			&item.UnitPrice,
			&item.LineTotal,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID

		pID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = pID

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

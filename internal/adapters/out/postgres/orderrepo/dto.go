// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column carries the optimistic concurrency counter; every
// successful update increments it.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;index"`
	AddressID     uuid.UUID  `gorm:"type:uuid"`
	OrderNumber   string     `gorm:"uniqueIndex"`
	Status        int        `gorm:"index"`
	PaymentStatus int
	SubTotal      int64
	ShippingCost  int64
	Tax           int64
	TotalAmount   int64
	ShippedAt     *time.Time
	DeliveredAt   *time.Time
	ParentOrderID *uuid.UUID `gorm:"type:uuid;index"`
	Version       int

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line in the database.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	UnitPrice int64
	LineTotal int64
}

// TableName specifies the database table name for order lines.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// The stored version is the version the aggregate was loaded with; Update
// bumps it when writing.
func fromDomain(aggregate *order.Order) OrderDTO {
	var parentOrderID *uuid.UUID
	if id := aggregate.ParentOrderID(); id != nil {
		raw := id.Bytes()
		parentOrderID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
			LineTotal: item.LineTotal().Amount(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		AddressID:     aggregate.AddressID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		Status:        int(aggregate.Status()),
		PaymentStatus: int(aggregate.PaymentStatus()),
		SubTotal:      aggregate.SubTotal().Amount(),
		ShippingCost:  aggregate.ShippingCost().Amount(),
		Tax:           aggregate.Tax().Amount(),
		TotalAmount:   aggregate.TotalAmount().Amount(),
		ShippedAt:     aggregate.ShippedAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
		ParentOrderID: parentOrderID,
		Version:       aggregate.Version(),
		Items:         items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	var parentOrderID *kernel.UUID
	if dto.ParentOrderID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentOrderID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentOrderID = &pID
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}

	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		addressID,
		dto.OrderNumber,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		items,
		shippingCost,
		tax,
		dto.ShippedAt,
		dto.DeliveredAt,
		parentOrderID,
		dto.Version,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, productID, dto.Quantity, unitPrice)
}

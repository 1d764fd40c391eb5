// Package splitrepo persists split audit records. Splits are written once
// inside the split transaction and read back for audit.
package splitrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/split"

	"github.com/google/uuid"
)

// SplitDTO represents the database structure for a split audit record.
type SplitDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OriginalOrderID uuid.UUID  `gorm:"type:uuid;index"`
	SplitOrderID    uuid.UUID  `gorm:"type:uuid;index"`
	Reason          string
	NewAddressID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time

	Items []SplitItemDTO `gorm:"foreignKey:SplitID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for split records.
func (SplitDTO) TableName() string {
	return "order_splits"
}

// SplitItemDTO represents one per-line quantity transfer of a split.
type SplitItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SplitID        uuid.UUID `gorm:"type:uuid;index"`
	OriginalItemID uuid.UUID `gorm:"type:uuid"`
	SplitItemID    uuid.UUID `gorm:"type:uuid"`
	Quantity       int
}

// TableName specifies the database table name for split transfers.
func (SplitItemDTO) TableName() string {
	return "order_split_items"
}

func fromDomain(aggregate *split.OrderSplit) SplitDTO {
	var newAddressID *uuid.UUID
	if id := aggregate.NewAddressID(); id != nil {
		raw := id.Bytes()
		newAddressID = &raw
	}

	items := make([]SplitItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, SplitItemDTO{
			ID:             item.ID().Bytes(),
			SplitID:        aggregate.ID().Bytes(),
			OriginalItemID: item.OriginalItemID().Bytes(),
			SplitItemID:    item.SplitItemID().Bytes(),
			Quantity:       item.Quantity(),
		})
	}

	return SplitDTO{
		ID:              aggregate.ID().Bytes(),
		OriginalOrderID: aggregate.OriginalOrderID().Bytes(),
		SplitOrderID:    aggregate.SplitOrderID().Bytes(),
		Reason:          aggregate.Reason(),
		NewAddressID:    newAddressID,
		CreatedAt:       aggregate.CreatedAt(),
		Items:           items,
	}
}

func toDomain(dto SplitDTO) (*split.OrderSplit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	originalOrderID, err := kernel.UUIDFromBytes(dto.OriginalOrderID[:])
	if err != nil {
		return nil, err
	}

	splitOrderID, err := kernel.UUIDFromBytes(dto.SplitOrderID[:])
	if err != nil {
		return nil, err
	}

	var newAddressID *kernel.UUID
	if dto.NewAddressID != nil {
		aID, addrErr := kernel.UUIDFromBytes((*dto.NewAddressID)[:])
		if addrErr != nil {
			return nil, addrErr
		}
		newAddressID = &aID
	}

	items := make([]*split.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return split.RestoreOrderSplit(id, originalOrderID, splitOrderID, dto.Reason, newAddressID, dto.CreatedAt, items)
}

func itemToDomain(dto SplitItemDTO) (*split.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	splitID, err := kernel.UUIDFromBytes(dto.SplitID[:])
	if err != nil {
		return nil, err
	}

	originalItemID, err := kernel.UUIDFromBytes(dto.OriginalItemID[:])
	if err != nil {
		return nil, err
	}

	splitItemID, err := kernel.UUIDFromBytes(dto.SplitItemID[:])
	if err != nil {
		return nil, err
	}

	return split.RestoreItem(id, splitID, originalItemID, splitItemID, dto.Quantity)
}

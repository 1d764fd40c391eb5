package orderrepo

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
// Updates use optimistic locking on the version column: the write matches
// the version the aggregate was loaded with and bumps it by one.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The write succeeds only
// when the stored version still equals the version the aggregate was loaded
// with; otherwise another writer won and a concurrency conflict is returned.
// The order's lines are replaced wholesale, which keeps removed and shrunk
// lines consistent with the aggregate.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select(
			"user_id", "address_id", "order_number", "status", "payment_status",
			"sub_total", "shipping_cost", "tax", "total_amount",
			"shipped_at", "delivered_at", "parent_order_id", "version",
		).
		Updates(OrderDTO{
			UserID:        dto.UserID,
			AddressID:     dto.AddressID,
			OrderNumber:   dto.OrderNumber,
			Status:        dto.Status,
			PaymentStatus: dto.PaymentStatus,
			SubTotal:      dto.SubTotal,
			ShippingCost:  dto.ShippingCost,
			Tax:           dto.Tax,
			TotalAmount:   dto.TotalAmount,
			ShippedAt:     dto.ShippedAt,
			DeliveredAt:   dto.DeliveredAt,
			ParentOrderID: dto.ParentOrderID,
			Version:       aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderId", aggregate.ID())
		}
		return errs.NewConcurrencyConflictError("orderId", aggregate.ID())
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

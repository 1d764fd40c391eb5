package splitrepo

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/split"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSplitRepository implements OrderSplitRepository using GORM.
type GormSplitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSplitRepository creates a new GORM split repository.
func NewGormSplitRepository(db *gorm.DB, tracker aggregateTracker) *GormSplitRepository {
	return &GormSplitRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new split record with its transfers to the database.
func (r *GormSplitRepository) Add(ctx context.Context, aggregate *split.OrderSplit) error {
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

// Get retrieves a split record with its transfers by ID.
func (r *GormSplitRepository) Get(ctx context.Context, id kernel.UUID) (*split.OrderSplit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SplitDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("splitId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOriginalOrder retrieves all splits carved out of an order, most
// recent first.
func (r *GormSplitRepository) GetByOriginalOrder(ctx context.Context, orderID kernel.UUID) ([]*split.OrderSplit, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SplitDTO
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("original_order_id = ?", orderID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	splits := make([]*split.OrderSplit, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		splits = append(splits, s)
	}

	return splits, nil
}

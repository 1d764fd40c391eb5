// Package outboxrepo persists domain events into the transactional outbox.
// Messages are written in the same transaction as the aggregate change and
// published asynchronously by the relay job, so an event is never emitted
// for a state change that did not commit.
package outboxrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageDTO represents one pending or published outbox message.
// Payload holds the JSON-encoded domain event.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID `gorm:"type:uuid;index"`
	EventName   string
	Payload     []byte `gorm:"type:jsonb"`
	CreatedAt   time.Time
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// GormOutboxRepository implements outbox persistence using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add appends a message to the outbox.
func (r *GormOutboxRepository) Add(ctx context.Context, message MessageDTO) error {
	return r.db.WithContext(ctx).Create(&message).Error
}

// GetUnpublished returns up to limit unpublished messages, oldest first.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]MessageDTO, error) {
	var messages []MessageDTO
	if err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkPublished stamps the given messages as published.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id IN ?", ids).
		Update("published_at", &now).Error
}

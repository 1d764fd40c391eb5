// Package productrepo reads catalog products. The catalog subsystem owns
// the products table; the commerce core only consults it when adding items.
package productrepo

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductDTO represents the database structure of a catalog product.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Price         int64
	DiscountPrice *int64
	Stock         int
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	var discountPrice *kernel.Money
	if dto.DiscountPrice != nil {
		dp, dpErr := kernel.NewMoney(*dto.DiscountPrice)
		if dpErr != nil {
			return nil, dpErr
		}
		discountPrice = &dp
	}

	return product.RestoreProduct(id, dto.Name, price, discountPrice, dto.Stock)
}

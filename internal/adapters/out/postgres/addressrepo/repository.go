// Package addressrepo reads shipping addresses. An outer subsystem owns the
// addresses table; the commerce core reads it to resolve address references.
package addressrepo

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/address"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressDTO represents the database structure of a shipping address.
type AddressDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Street  string
	City    string
	ZipCode string
}

// TableName specifies the database table name for addresses.
func (AddressDTO) TableName() string {
	return "addresses"
}

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GORM address repository.
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// Get retrieves an address by ID.
func (r *GormAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("addressId", id.String())
		}
		return nil, err
	}

	addrID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return address.NewAddress(addrID, dto.Street, dto.City, dto.ZipCode)
}

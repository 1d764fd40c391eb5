// Package product provides the Product entity consumed by the order
// aggregate when adding items. Products are owned by an external catalog
// subsystem; this core only reads the name, pricing, and stock level
// at the instant of item addition. Stock is checked but never reserved or
// decremented here; a separate inventory subsystem owns that invariant.
package product

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a read model of a catalog product: identity, display name,
// list price, optional discounted price, and the stock level observed at
// load time.
type Product struct {
	id            kernel.UUID
	name          string
	price         kernel.Money
	discountPrice *kernel.Money
	stock         int

	guard guard.ConstructorGuard
}

// NewProduct creates a Product with validation. The discounted price is
// optional; when present it must not exceed the list price.
func NewProduct(id kernel.UUID, name string, price kernel.Money, discountPrice *kernel.Money, stock int) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPricing(price, discountPrice),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// It applies the same validation rules as NewProduct.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money, discountPrice *kernel.Money, stock int) (*Product, error) {
	return NewProduct(id, name, price, discountPrice, stock)
}

// Validate ensures the Product was created through a factory function.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's list price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// DiscountPrice returns the discounted price, or nil if the product is not
// discounted.
func (p *Product) DiscountPrice() *kernel.Money {
	return p.discountPrice
}

// Stock returns the stock level observed when the product was loaded.
func (p *Product) Stock() int {
	return p.stock
}

// EffectivePrice returns the price an order item is charged at:
// the discounted price when present, otherwise the list price.
func (p *Product) EffectivePrice() kernel.Money {
	if p.discountPrice != nil {
		return *p.discountPrice
	}
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPricing(price kernel.Money, discountPrice *kernel.Money) error {
	if discountPrice != nil && discountPrice.Amount() > price.Amount() {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount price",
			fmt.Errorf("%s exceeds the list price %s", discountPrice, price),
		)
	}
	p.price = price
	if discountPrice != nil {
		dp := *discountPrice
		p.discountPrice = &dp
	}
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}

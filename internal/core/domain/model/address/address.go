// Package address provides the Address entity referenced by orders.
// Addresses are validated by an outer layer before they reach the core;
// the order factory requires a constructed Address to prove that the
// referenced addressId resolves to something real.
package address

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory function.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")

// Address is a shipping destination: identity plus the minimal postal
// fields the order core needs to carry around.
type Address struct {
	id      kernel.UUID
	street  string
	city    string
	zipCode string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address with validation. Street and city are
// required; the zip code is optional.
func NewAddress(id kernel.UUID, street, city, zipCode string) (*Address, error) {
	a := &Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setStreet(street),
		a.setCity(city),
	); err != nil {
		return nil, err
	}
	a.zipCode = zipCode

	return a, nil
}

// Validate ensures the Address was created through NewAddress.
func (a *Address) Validate() error {
	if a == nil {
		return ErrAddressIsNotConstructed
	}
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// ID returns the address's unique identifier.
func (a *Address) ID() kernel.UUID {
	return a.id
}

// Street returns the street line.
func (a *Address) Street() string {
	return a.street
}

// City returns the city name.
func (a *Address) City() string {
	return a.city
}

// ZipCode returns the postal code, possibly empty.
func (a *Address) ZipCode() string {
	return a.zipCode
}

func (a *Address) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

// Package guard provides a defensive construction pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes it
// possible to detect whether the struct was produced by its designated
// constructor or created as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by
// ConstructorGuard.Validate() when a nil error is passed as the validation
// error. This ensures that validation always fails with a meaningful message
// even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their
// designated constructor functions. The guard maintains an internal flag that
// is only set when the object is created through the proper constructor; any
// attempt to use a zero-value struct fails validation.
//
// Example usage:
//
//	var ErrCommandNotConstructed = errors.New("command must be created via its constructor")
//
//	type SomeCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewSomeCommand(orderID kernel.UUID) (SomeCommand, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return SomeCommand{}, err
//	    }
//	    return SomeCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SomeCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects so they
// can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
//
// If the object was created as a zero value, Validate returns the provided
// validation error; if validationError is nil, ErrDefaultConstructorGuard is
// returned instead. A properly constructed object validates to nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

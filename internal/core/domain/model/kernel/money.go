package kernel

import (
	"fmt"
	"math"

	"commerce/internal/pkg/errs"
)

// Money is an immutable, non-negative monetary amount expressed in minor
// currency units (cents). It is the single representation of every monetary
// value in the commerce core: unit prices, line totals, subtotals, shipping
// costs, taxes, and order totals.
//
// The zero value of Money is a legitimate zero amount, so Money needs no
// constructor guard; negative amounts are rejected at construction and by
// every arithmetic operation that could produce one.
//
// All operations return a new Money value and never mutate the receiver.
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor units.
// Returns a validation error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money amount", amount, 0, int64(math.MaxInt64))
	}
	return Money{amount: amount}, nil
}

// Zero returns a Money value of zero amount.
func Zero() Money {
	return Money{}
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two Money values for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// Add returns the sum of the receiver and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Subtract returns the difference between the receiver and other.
// Returns a validation error if the result would be negative, preserving the
// non-negativity invariant.
func (m Money) Subtract(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("subtracting %d from %d yields a negative amount", other.amount, m.amount),
		)
	}
	return Money{amount: m.amount - other.amount}, nil
}

// MultiplyBy returns the receiver multiplied by a non-negative quantity.
// Used to derive a line total from a unit price.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt)
	}
	return Money{amount: m.amount * int64(quantity)}, nil
}

// Apportion distributes the receiver proportionally: it returns
// receiver × part / whole using integer arithmetic, rounding toward zero.
// A zero whole yields a zero amount. Used for tax apportionment during an
// order split, where the receiver is the original order's tax, part is the
// split subtotal, and whole is the original subtotal captured before any
// quantity transfer.
func (m Money) Apportion(part, whole Money) Money {
	if whole.amount == 0 {
		return Money{}
	}
	return Money{amount: m.amount * part.amount / whole.amount}
}

// String returns a human-readable decimal representation, e.g. "125.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}

package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed adjacency table so orders follow
// the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Processing ──> Shipped ──> Delivered ──> Refunded
//	          │        ^  │
//	          ├──> OnHold ┤
//	          │        │  │
//	          └────────┴──┴──> Cancelled
//
// Cancelled and Refunded are terminal. OnHold behaves like Pending for
// forward motion: it can resume to Processing or be cancelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status: the order is being assembled and its
	// items may still change.
	Pending

	// Processing indicates the order is confirmed and being prepared.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled is a terminal status with no further transitions.
	Cancelled

	// Refunded is reached only from Delivered.
	Refunded

	// OnHold suspends a pending order; it can resume to Processing or be
	// cancelled.
	OnHold
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Pending:       "Pending",
		Processing:    "Processing",
		Shipped:       "Shipped",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
		Refunded:      "Refunded",
		OnHold:        "OnHold",
	}
}

// legalTransitions returns the adjacency table of permitted status moves.
// A status missing from the targets of its current entry cannot be reached.
func legalTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Cancelled, OnHold},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
		Delivered:  {Refunded},
		Cancelled:  {},
		Refunded:   {},
		OnHold:     {Processing, Cancelled},
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether moving from the receiver to target is
// permitted by the adjacency table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range legalTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo performs the state transition to target.
//
// Returns:
//   - (target, nil) when the adjacency table permits the move
//   - (0, error) with a domain-rule violation otherwise; the caller's status
//     stays unchanged
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewDomainRuleViolationErrorWithCause(
			"invalid order status transition",
			fmt.Errorf("%s cannot transition to %s", s.String(), target.String()),
		)
	}

	return target, nil
}

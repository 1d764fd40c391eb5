package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// PaymentStatus tracks the payment side of an order independently of its
// fulfilment status.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial payment status on order creation.
	PaymentPending

	// PaymentPaid indicates the payment callback confirmed the charge.
	PaymentPaid

	// PaymentRefunded is set when the order itself is refunded.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "Unknown",
		PaymentPending:  "Pending",
		PaymentPaid:     "Paid",
		PaymentRefunded: "Refunded",
	}
}

// Validate checks if the PaymentStatus value is one of the defined states.
func (s PaymentStatus) Validate() error {
	if s == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	if _, ok := getPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

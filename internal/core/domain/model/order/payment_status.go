package order

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// PaymentStatus tracks whether an order has been paid, independently of the
// kitchen workflow tracked by Status.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// Unpaid is the initial payment status of every order.
	Unpaid

	// Paid indicates payment has been captured.
	Paid

	// Refunded indicates a captured payment was returned, typically after
	// cancellation.
	Refunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "unknown",
		Unpaid:         "unpaid",
		Paid:           "paid",
		Refunded:       "refunded",
	}
}

// PaymentStatusFromString parses a wire name into a PaymentStatus.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if name == s && status != PaymentUnknown {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is valid.
// PaymentUnknown (0) and values outside the enumeration are invalid.
func (p PaymentStatus) Validate() error {
	switch p {
	case Unpaid, Paid, Refunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p))
	}
}

// String returns the wire name of the payment status, "unknown" for
// invalid values.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}

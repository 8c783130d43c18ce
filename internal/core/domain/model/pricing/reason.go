package pricing

import (
	"fmt"

	"tableside/internal/pkg/errs"
)

// ChangeReason classifies why a price-ledger entry was written.
type ChangeReason int

const (
	// ReasonUnknown represents an invalid or undefined reason.
	ReasonUnknown ChangeReason = iota

	// Initial is the first entry written when a product is created.
	Initial

	// PriceIncrease records a price raised above the previous one.
	PriceIncrease

	// PriceDecrease records a price lowered below the previous one.
	PriceDecrease

	// Promotion records a temporary promotional price.
	Promotion

	// Correction records a fix of a previously mistaken price.
	Correction

	// Seasonal records a seasonal menu adjustment.
	Seasonal

	// CostAdjustment records a change driven by ingredient or supplier cost.
	CostAdjustment

	// TaxChange records a change driven by tax rate updates.
	TaxChange

	// Other records any change that fits no other category.
	Other
)

func getReasonStrings() map[ChangeReason]string {
	return map[ChangeReason]string{
		ReasonUnknown:  "unknown",
		Initial:        "initial",
		PriceIncrease:  "price_increase",
		PriceDecrease:  "price_decrease",
		Promotion:      "promotion",
		Correction:     "correction",
		Seasonal:       "seasonal",
		CostAdjustment: "cost_adjustment",
		TaxChange:      "tax_change",
		Other:          "other",
	}
}

// ChangeReasonFromString parses a wire name ("initial", "price_increase", ...)
// into a ChangeReason. Returns an error for names outside the enumeration.
func ChangeReasonFromString(s string) (ChangeReason, error) {
	for reason, name := range getReasonStrings() {
		if name == s && reason != ReasonUnknown {
			return reason, nil
		}
	}
	return ReasonUnknown, errs.NewValueIsInvalidErrorWithCause("reason",
		fmt.Errorf("%q is not a valid change reason", s))
}

// Validate checks if the ChangeReason value is valid.
// ReasonUnknown (0) and values outside the enumeration are invalid.
func (r ChangeReason) Validate() error {
	if _, ok := getReasonStrings()[r]; !ok || r == ReasonUnknown {
		return errs.NewValueIsInvalidErrorWithCause("reason is invalid",
			fmt.Errorf("%d is not a valid change reason", r))
	}
	return nil
}

// String returns the wire name of the reason, "unknown" for invalid values.
func (r ChangeReason) String() string {
	if str, ok := getReasonStrings()[r]; ok {
		return str
	}
	return "unknown"
}

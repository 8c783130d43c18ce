package pricing

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// ErrPriceEntryIsNotConstructed is returned when a PriceEntry instance was not
// created through NewPriceEntry or RestorePriceEntry.
var ErrPriceEntryIsNotConstructed = errors.New(
	"PriceEntry must be created via NewPriceEntry or RestorePriceEntry")

// PriceEntry is one immutable record in a product's price history.
//
// Once created, no field of a PriceEntry ever changes and the record is never
// deleted. A price change is always expressed as a new entry whose
// previousPrice equals the prior entry's price. The entry itself imposes no
// ordering constraint between price and previousPrice; directional
// preconditions (increase means higher, decrease means lower) are enforced by
// the command constructors before any write occurs. The only constraint here
// is that price must not be negative.
type PriceEntry struct {
	// id is the unique identifier for the ledger entry
	id kernel.UUID

	// organizationID scopes the entry to a tenant
	organizationID kernel.UUID

	// productID references the priced product
	productID kernel.UUID

	// price is the authoritative price from effectiveFrom onward
	price kernel.Money

	// previousPrice is the prior entry's price (nil for the initial entry)
	previousPrice *kernel.Money

	// reason classifies the change
	reason ChangeReason

	// notes carries optional free-form context for the change
	notes *string

	// effectiveFrom is when this price becomes authoritative; it strictly
	// orders the history for a product
	effectiveFrom time.Time

	// createdBy references the team member who made the change, if known
	createdBy *kernel.UUID

	// createdAt is when the record was written
	createdAt time.Time

	isConstructed bool
}

// NewPriceEntry creates an immutable ledger entry.
//
// Parameters:
//   - id: Unique identifier for the entry
//   - organizationID: Owning tenant
//   - productID: The priced product
//   - price: The new price; must not be negative
//   - previousPrice: The prior entry's price, nil for the initial entry
//   - reason: Why the price changed
//   - notes: Optional free-form context (nil when absent)
//   - effectiveFrom: When the price becomes authoritative; must not be zero
//   - createdBy: Optional author reference
//   - createdAt: Record creation time; must not be zero
func NewPriceEntry(
	id kernel.UUID,
	organizationID kernel.UUID,
	productID kernel.UUID,
	price kernel.Money,
	previousPrice *kernel.Money,
	reason ChangeReason,
	notes *string,
	effectiveFrom time.Time,
	createdBy *kernel.UUID,
	createdAt time.Time,
) (*PriceEntry, error) {
	if err := errors.Join(
		id.Validate(),
		organizationID.Validate(),
		productID.Validate(),
		price.Validate(),
		reason.Validate(),
	); err != nil {
		return nil, err
	}

	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("price must not be negative")
	}

	if previousPrice != nil {
		if err := previousPrice.Validate(); err != nil {
			return nil, err
		}
	}

	if createdBy != nil {
		if err := createdBy.Validate(); err != nil {
			return nil, err
		}
	}

	if effectiveFrom.IsZero() {
		return nil, errs.NewValueIsRequiredError("effectiveFrom")
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &PriceEntry{
		id:             id,
		organizationID: organizationID,
		productID:      productID,
		price:          price,
		previousPrice:  previousPrice,
		reason:         reason,
		notes:          notes,
		effectiveFrom:  effectiveFrom,
		createdBy:      createdBy,
		createdAt:      createdAt,
		isConstructed:  true,
	}, nil
}

// RestorePriceEntry reconstructs a ledger entry from persistence.
// Shares validation with NewPriceEntry; stored history is expected to be
// valid, but reconstruction still refuses corrupted rows.
func RestorePriceEntry(
	id kernel.UUID,
	organizationID kernel.UUID,
	productID kernel.UUID,
	price kernel.Money,
	previousPrice *kernel.Money,
	reason ChangeReason,
	notes *string,
	effectiveFrom time.Time,
	createdBy *kernel.UUID,
	createdAt time.Time,
) (*PriceEntry, error) {
	return NewPriceEntry(
		id, organizationID, productID, price, previousPrice,
		reason, notes, effectiveFrom, createdBy, createdAt)
}

// Validate ensures the PriceEntry was created through a constructor.
func (e *PriceEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrPriceEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *PriceEntry) ID() kernel.UUID {
	return e.id
}

// OrganizationID returns the owning tenant's identifier.
func (e *PriceEntry) OrganizationID() kernel.UUID {
	return e.organizationID
}

// ProductID returns the identifier of the priced product.
func (e *PriceEntry) ProductID() kernel.UUID {
	return e.productID
}

// Price returns the price this entry establishes.
func (e *PriceEntry) Price() kernel.Money {
	return e.price
}

// PreviousPrice returns the prior entry's price, or nil for the initial entry.
func (e *PriceEntry) PreviousPrice() *kernel.Money {
	return e.previousPrice
}

// Reason returns the classification of the change.
func (e *PriceEntry) Reason() ChangeReason {
	return e.reason
}

// Notes returns the optional free-form context, or nil.
func (e *PriceEntry) Notes() *string {
	return e.notes
}

// EffectiveFrom returns when this price becomes authoritative.
func (e *PriceEntry) EffectiveFrom() time.Time {
	return e.effectiveFrom
}

// CreatedBy returns the optional author reference, or nil.
func (e *PriceEntry) CreatedBy() *kernel.UUID {
	return e.createdBy
}

// CreatedAt returns when the record was written.
func (e *PriceEntry) CreatedAt() time.Time {
	return e.createdAt
}

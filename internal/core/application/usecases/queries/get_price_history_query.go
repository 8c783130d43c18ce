package queries

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrGetPriceHistoryQueryIsNotConstructed = errors.New(
	"GetPriceHistoryQuery must be created via NewGetPriceHistoryQuery constructor",
)

const maxHistoryLimit = 500

// GetPriceHistoryQuery retrieves a product's price-ledger entries, newest
// first. Supports optional time-range and reason filters plus a result cap.
type GetPriceHistoryQuery struct {
	organizationID kernel.UUID
	productID      kernel.UUID
	from           *time.Time
	to             *time.Time
	reason         *pricing.ChangeReason
	limit          int

	guard guard.ConstructorGuard
}

// NewGetPriceHistoryQuery creates a query to retrieve price history.
// A zero limit means no cap; the cap tops out at 500 entries.
func NewGetPriceHistoryQuery(
	organizationID, productID kernel.UUID,
	from, to *time.Time,
	reason *pricing.ChangeReason,
	limit int,
) (GetPriceHistoryQuery, error) {
	if err := errors.Join(
		organizationID.Validate(),
		productID.Validate(),
	); err != nil {
		return GetPriceHistoryQuery{}, err
	}

	if reason != nil {
		if err := reason.Validate(); err != nil {
			return GetPriceHistoryQuery{}, err
		}
	}

	if limit < 0 || limit > maxHistoryLimit {
		return GetPriceHistoryQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, maxHistoryLimit)
	}

	if from != nil && to != nil && to.Before(*from) {
		return GetPriceHistoryQuery{}, errs.NewValueIsInvalidError("to must not precede from")
	}

	return GetPriceHistoryQuery{
		organizationID: organizationID,
		productID:      productID,
		from:           from,
		to:             to,
		reason:         reason,
		limit:          limit,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPriceHistoryQueryIsNotConstructed if validation fails.
func (q GetPriceHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceHistoryQueryIsNotConstructed)
}

// OrganizationID returns the owning tenant.
func (q GetPriceHistoryQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// ProductID returns the priced product.
func (q GetPriceHistoryQuery) ProductID() kernel.UUID {
	return q.productID
}

// From returns the optional lower bound on effective-from.
func (q GetPriceHistoryQuery) From() *time.Time {
	return q.from
}

// To returns the optional upper bound on effective-from.
func (q GetPriceHistoryQuery) To() *time.Time {
	return q.to
}

// Reason returns the optional reason filter.
func (q GetPriceHistoryQuery) Reason() *pricing.ChangeReason {
	return q.reason
}

// Limit returns the result cap, zero for no cap.
func (q GetPriceHistoryQuery) Limit() int {
	return q.limit
}

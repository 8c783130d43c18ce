package queries

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrGetPriceChangeStatsQueryIsNotConstructed = errors.New(
	"GetPriceChangeStatsQuery must be created via NewGetPriceChangeStatsQuery constructor",
)

// GetPriceChangeStatsQuery aggregates an organization's ledger entries over
// a time range: counts per reason and the average change percentage.
// An optional product filter narrows the aggregation to one product.
type GetPriceChangeStatsQuery struct {
	organizationID kernel.UUID
	productID      *kernel.UUID
	from           time.Time
	to             time.Time

	guard guard.ConstructorGuard
}

// NewGetPriceChangeStatsQuery creates a query to aggregate price changes
// effective within [from, to].
func NewGetPriceChangeStatsQuery(
	organizationID kernel.UUID,
	productID *kernel.UUID,
	from, to time.Time,
) (GetPriceChangeStatsQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return GetPriceChangeStatsQuery{}, err
	}

	if productID != nil {
		if err := productID.Validate(); err != nil {
			return GetPriceChangeStatsQuery{}, err
		}
	}

	if from.IsZero() {
		return GetPriceChangeStatsQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetPriceChangeStatsQuery{}, errs.NewValueIsRequiredError("to")
	}
	if to.Before(from) {
		return GetPriceChangeStatsQuery{}, errs.NewValueIsInvalidError("to must not precede from")
	}

	return GetPriceChangeStatsQuery{
		organizationID: organizationID,
		productID:      productID,
		from:           from,
		to:             to,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPriceChangeStatsQueryIsNotConstructed if validation fails.
func (q GetPriceChangeStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceChangeStatsQueryIsNotConstructed)
}

// OrganizationID returns the owning tenant.
func (q GetPriceChangeStatsQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// ProductID returns the optional product filter.
func (q GetPriceChangeStatsQuery) ProductID() *kernel.UUID {
	return q.productID
}

// From returns the inclusive lower bound on effective-from.
func (q GetPriceChangeStatsQuery) From() time.Time {
	return q.from
}

// To returns the inclusive upper bound on effective-from.
func (q GetPriceChangeStatsQuery) To() time.Time {
	return q.to
}

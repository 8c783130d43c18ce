package queries

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrGetPriceAtTimeQueryIsNotConstructed = errors.New(
	"GetPriceAtTimeQuery must be created via NewGetPriceAtTimeQuery constructor",
)

// GetPriceAtTimeQuery retrieves the ledger entry that was effective at a
// given moment. Answers "what did this cost last Tuesday" for audits and
// order reconciliation.
type GetPriceAtTimeQuery struct {
	organizationID kernel.UUID
	productID      kernel.UUID
	at             time.Time

	guard guard.ConstructorGuard
}

// NewGetPriceAtTimeQuery creates a query to retrieve a product's price as of
// the given moment.
func NewGetPriceAtTimeQuery(organizationID, productID kernel.UUID, at time.Time) (GetPriceAtTimeQuery, error) {
	if err := errors.Join(
		organizationID.Validate(),
		productID.Validate(),
	); err != nil {
		return GetPriceAtTimeQuery{}, err
	}

	if at.IsZero() {
		return GetPriceAtTimeQuery{}, errs.NewValueIsRequiredError("at")
	}

	return GetPriceAtTimeQuery{
		organizationID: organizationID,
		productID:      productID,
		at:             at,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPriceAtTimeQueryIsNotConstructed if validation fails.
func (q GetPriceAtTimeQuery) Validate() error {
	return q.guard.Validate(ErrGetPriceAtTimeQueryIsNotConstructed)
}

// OrganizationID returns the owning tenant.
func (q GetPriceAtTimeQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// ProductID returns the priced product.
func (q GetPriceAtTimeQuery) ProductID() kernel.UUID {
	return q.productID
}

// At returns the moment to price at.
func (q GetPriceAtTimeQuery) At() time.Time {
	return q.at
}

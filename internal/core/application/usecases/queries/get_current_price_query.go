package queries

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var ErrGetCurrentPriceQueryIsNotConstructed = errors.New(
	"GetCurrentPriceQuery must be created via NewGetCurrentPriceQuery constructor",
)

// GetCurrentPriceQuery retrieves the ledger entry currently in effect for a
// product. The answer comes from the ledger itself, not from the product's
// denormalized projection.
type GetCurrentPriceQuery struct {
	organizationID kernel.UUID
	productID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentPriceQuery creates a query to retrieve a product's current price.
func NewGetCurrentPriceQuery(organizationID, productID kernel.UUID) (GetCurrentPriceQuery, error) {
	if err := errors.Join(
		organizationID.Validate(),
		productID.Validate(),
	); err != nil {
		return GetCurrentPriceQuery{}, err
	}

	return GetCurrentPriceQuery{
		organizationID: organizationID,
		productID:      productID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCurrentPriceQueryIsNotConstructed if validation fails.
func (q GetCurrentPriceQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentPriceQueryIsNotConstructed)
}

// OrganizationID returns the owning tenant.
func (q GetCurrentPriceQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// ProductID returns the priced product.
func (q GetCurrentPriceQuery) ProductID() kernel.UUID {
	return q.productID
}

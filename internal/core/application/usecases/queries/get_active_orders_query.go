// Package queries contains read-only operations for the query side of the
// CQRS architecture. Query handlers bypass the domain aggregates and read
// denormalized rows straight from the database.
package queries

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves all orders of an organization that are not
// in a terminal status. Used by kitchen displays and staff dashboards.
type GetActiveOrdersQuery struct {
	organizationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve an organization's
// active orders.
func NewGetActiveOrdersQuery(organizationID kernel.UUID) (GetActiveOrdersQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// OrganizationID returns the owning tenant.
func (q GetActiveOrdersQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// OrderResponse represents a read model of one order.
type OrderResponse struct {
	ID            kernel.UUID
	TableID       *kernel.UUID
	Status        string
	PaymentStatus string
	TotalAmount   decimal.Decimal
	Currency      string
	PlacedAt      time.Time
	Items         []OrderItemResponse
}

// OrderItemResponse represents a read model of one order line.
// The pricing fields reflect what was frozen at placement time.
type OrderItemResponse struct {
	ID            kernel.UUID
	ProductID     kernel.UUID
	PriceEntryID  *kernel.UUID
	Quantity      int
	UnitPrice     decimal.Decimal
	ModifierTotal decimal.Decimal
	ItemTotal     decimal.Decimal
	Status        string
}

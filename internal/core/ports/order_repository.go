// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are only ever inserted and transitioned; there is no delete
// operation because cancellation is a terminal status, not a row deletion.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Only the status and
	// payment-status columns are written; line items and totals are frozen
	// at creation and never updated.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all orders of an organization that are not in
	// a terminal status, oldest first.
	GetAllActive(ctx context.Context, organizationID kernel.UUID) ([]*order.Order, error)
}

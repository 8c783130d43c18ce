package ports

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product, including its
	// denormalized current-price projection.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllActive retrieves all active products of an organization.
	GetAllActive(ctx context.Context, organizationID kernel.UUID) ([]*product.Product, error)

	// GetAll retrieves every product across all organizations.
	// Used by the projection reconciliation job.
	GetAll(ctx context.Context) ([]*product.Product, error)
}

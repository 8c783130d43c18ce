// Package product contains the Product aggregate. A product's current price
// field is a denormalized projection of the price ledger, refreshed after
// ledger writes; it exists for menu display only and is never an input to
// order pricing.
package product

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product represents a sellable menu item within an organization.
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// organizationID scopes the product to a tenant
	organizationID kernel.UUID

	// categoryID references the menu category, if any
	categoryID *kernel.UUID

	// name is the display name of the menu item
	name string

	// description is the optional menu description
	description *string

	// currentPrice is a projection of the latest ledger entry; nil until
	// the first refresh
	currentPrice *kernel.Money

	// active controls whether the product appears on the menu
	active bool

	isConstructed bool
}

// NewProduct creates an active Product without a price projection.
// The initial price itself is written to the price ledger by the
// product-creation flow, not stored here.
func NewProduct(
	id kernel.UUID,
	organizationID kernel.UUID,
	categoryID *kernel.UUID,
	name string,
	description *string,
) (*Product, error) {
	if err := errors.Join(
		id.Validate(),
		organizationID.Validate(),
	); err != nil {
		return nil, err
	}

	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return nil, err
		}
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Product{
		id:             id,
		organizationID: organizationID,
		categoryID:     categoryID,
		name:           name,
		description:    description,
		active:         true,
		isConstructed:  true,
	}, nil
}

// RestoreProduct reconstructs a Product from persistence.
func RestoreProduct(
	id kernel.UUID,
	organizationID kernel.UUID,
	categoryID *kernel.UUID,
	name string,
	description *string,
	currentPrice *kernel.Money,
	active bool,
) (*Product, error) {
	p, err := NewProduct(id, organizationID, categoryID, name, description)
	if err != nil {
		return nil, err
	}

	if currentPrice != nil {
		if err = currentPrice.Validate(); err != nil {
			return nil, err
		}
		p.currentPrice = currentPrice
	}
	p.active = active

	return p, nil
}

// Validate ensures the Product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// OrganizationID returns the owning tenant's identifier.
func (p *Product) OrganizationID() kernel.UUID {
	return p.organizationID
}

// CategoryID returns the menu category reference, or nil.
func (p *Product) CategoryID() *kernel.UUID {
	return p.categoryID
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional menu description, or nil.
func (p *Product) Description() *string {
	return p.description
}

// CurrentPrice returns the denormalized price projection, or nil before the
// first refresh. Order pricing must resolve prices through the ledger, never
// through this field.
func (p *Product) CurrentPrice() *kernel.Money {
	return p.currentPrice
}

// Active reports whether the product appears on the menu.
func (p *Product) Active() bool {
	return p.active
}

// RefreshPriceProjection overwrites the denormalized price projection with
// the latest ledger price. Called after ledger writes and by the periodic
// reconciliation job.
func (p *Product) RefreshPriceProjection(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	p.currentPrice = &price
	return nil
}

// Deactivate removes the product from the menu without deleting it; its
// ledger history and past order items remain intact.
func (p *Product) Deactivate() {
	p.active = false
}

// Activate returns the product to the menu.
func (p *Product) Activate() {
	p.active = true
}

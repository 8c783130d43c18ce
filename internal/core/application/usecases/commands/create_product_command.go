package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to register a new product with
// its initial price. The price goes into the price ledger as an initial
// entry; the product row only carries the denormalized projection.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID      kernel.UUID
	organizationID kernel.UUID
	categoryID     *kernel.UUID
	name           string
	description    *string
	initialPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product.
// Validates identifiers, the name and the initial price. The price must
// not be negative; a zero price is allowed for complimentary items.
func NewCreateProductCommand(
	productID kernel.UUID,
	organizationID kernel.UUID,
	categoryID *kernel.UUID,
	name string,
	description *string,
	initialPrice kernel.Money,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setOrganizationID(organizationID),
		cmd.setCategoryID(categoryID),
		cmd.setName(name),
		cmd.setInitialPrice(initialPrice),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateProductCommandIsNotConstructed if validation fails.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// OrganizationID returns the owning tenant.
func (c CreateProductCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// CategoryID returns the optional menu category reference.
func (c CreateProductCommand) CategoryID() *kernel.UUID {
	return c.categoryID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional product description.
func (c CreateProductCommand) Description() *string {
	return c.description
}

// InitialPrice returns the product's first price.
func (c CreateProductCommand) InitialPrice() kernel.Money {
	return c.initialPrice
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateProductCommand) setCategoryID(categoryID *kernel.UUID) error {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return err
		}
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setInitialPrice(initialPrice kernel.Money) error {
	if err := initialPrice.Validate(); err != nil {
		return err
	}
	if initialPrice.IsNegative() {
		return errs.NewValueIsInvalidError("initial price must not be negative")
	}

	c.initialPrice = initialPrice
	return nil
}

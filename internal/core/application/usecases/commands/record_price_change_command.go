package commands

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var ErrRecordPriceChangeCommandIsNotConstructed = errors.New(
	"RecordPriceChangeCommand must be created via NewRecordPriceChangeCommand constructor",
)

// RecordPriceChangeCommand represents a request to append an entry to a
// product's price ledger. The entry's previous price is resolved by the
// handler from the current head of the ledger, never supplied by the caller.
//
// Convenience constructors fix the change reason for the common operations:
// NewRecordInitialPriceCommand, NewRecordPriceIncreaseCommand,
// NewRecordPriceDecreaseCommand, NewRecordPriceCorrectionCommand and
// NewRecordPromotionalPriceCommand.
type RecordPriceChangeCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	productID      kernel.UUID
	price          kernel.Money
	reason         pricing.ChangeReason
	notes          *string
	effectiveFrom  time.Time
	createdBy      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordPriceChangeCommand creates a command to record a price change with
// an explicit reason. Validates identifiers, the price, the reason and the
// effective-from timestamp. The price must not be negative.
func NewRecordPriceChangeCommand(
	organizationID kernel.UUID,
	productID kernel.UUID,
	price kernel.Money,
	reason pricing.ChangeReason,
	notes *string,
	effectiveFrom time.Time,
	createdBy *kernel.UUID,
) (RecordPriceChangeCommand, error) {
	cmd := RecordPriceChangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrganizationID(organizationID),
		cmd.setProductID(productID),
		cmd.setPrice(price),
		cmd.setReason(reason),
		cmd.setEffectiveFrom(effectiveFrom),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return RecordPriceChangeCommand{}, err
	}

	cmd.notes = notes
	return cmd, nil
}

// NewRecordInitialPriceCommand creates a command to record a product's very
// first price. The handler rejects it if the product already has ledger entries.
func NewRecordInitialPriceCommand(
	organizationID kernel.UUID,
	productID kernel.UUID,
	price kernel.Money,
	notes *string,
	effectiveFrom time.Time,
	createdBy *kernel.UUID,
) (RecordPriceChangeCommand, error) {
	return NewRecordPriceChangeCommand(
		organizationID, productID, price, pricing.Initial, notes, effectiveFrom, createdBy)
}

// NewRecordPriceIncreaseCommand creates a command to record a price increase.
// The handler rejects it unless the new price is strictly greater than the
// current ledger price.
func NewRecordPriceIncreaseCommand(
	organizationID kernel.UUID,
	productID kernel.UUID,
	price kernel.Money,
	notes *string,
	effectiveFrom time.Time,
	createdBy *kernel.UUID,
) (RecordPriceChangeCommand, error) {
	return NewRecordPriceChangeCommand(
		organizationID, productID, price, pricing.PriceIncrease, notes, effectiveFrom, createdBy)
}

// NewRecordPriceDecreaseCommand creates a command to record a price decrease.
// The handler rejects it unless the new price is strictly less than the
// current ledger price.
func NewRecordPriceDecreaseCommand(
	organizationID kernel.UUID,
	productID kernel.UUID,
	price kernel.Money,
	notes *string,
	effectiveFrom time.Time,
	createdBy *kernel.UUID,
) (RecordPriceChangeCommand, error) {
	return NewRecordPriceChangeCommand(
		organizationID, productID, price, pricing.PriceDecrease, notes, effectiveFrom, createdBy)
}

// NewRecordPriceCorrectionCommand creates a command to record a correction.
// Corrections append a new entry; they never rewrite the erroneous one.
func NewRecordPriceCorrectionCommand(
	organizationID kernel.UUID,
	productID kernel.UUID,
	price kernel.Money,
	notes *string,
	effectiveFrom time.Time,
	createdBy *kernel.UUID,
) (RecordPriceChangeCommand, error) {
	return NewRecordPriceChangeCommand(
		organizationID, productID, price, pricing.Correction, notes, effectiveFrom, createdBy)
}

// NewRecordPromotionalPriceCommand creates a command to record a promotional price.
func NewRecordPromotionalPriceCommand(
	organizationID kernel.UUID,
	productID kernel.UUID,
	price kernel.Money,
	notes *string,
	effectiveFrom time.Time,
	createdBy *kernel.UUID,
) (RecordPriceChangeCommand, error) {
	return NewRecordPriceChangeCommand(
		organizationID, productID, price, pricing.Promotion, notes, effectiveFrom, createdBy)
}

// Validate ensures the command was created through a constructor.
// Returns ErrRecordPriceChangeCommandIsNotConstructed if validation fails.
func (c RecordPriceChangeCommand) Validate() error {
	return c.guard.Validate(ErrRecordPriceChangeCommandIsNotConstructed)
}

// OrganizationID returns the owning tenant.
func (c RecordPriceChangeCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// ProductID returns the priced product.
func (c RecordPriceChangeCommand) ProductID() kernel.UUID {
	return c.productID
}

// Price returns the new price to record.
func (c RecordPriceChangeCommand) Price() kernel.Money {
	return c.price
}

// Reason returns why the price changed.
func (c RecordPriceChangeCommand) Reason() pricing.ChangeReason {
	return c.reason
}

// Notes returns optional free-form context, nil when absent.
func (c RecordPriceChangeCommand) Notes() *string {
	return c.notes
}

// EffectiveFrom returns when the new price becomes authoritative.
func (c RecordPriceChangeCommand) EffectiveFrom() time.Time {
	return c.effectiveFrom
}

// CreatedBy returns the optional author reference.
func (c RecordPriceChangeCommand) CreatedBy() *kernel.UUID {
	return c.createdBy
}

func (c *RecordPriceChangeCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *RecordPriceChangeCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *RecordPriceChangeCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price must not be negative")
	}

	c.price = price
	return nil
}

func (c *RecordPriceChangeCommand) setReason(reason pricing.ChangeReason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	c.reason = reason
	return nil
}

func (c *RecordPriceChangeCommand) setEffectiveFrom(effectiveFrom time.Time) error {
	if effectiveFrom.IsZero() {
		return errs.NewValueIsRequiredError("effectiveFrom")
	}

	c.effectiveFrom = effectiveFrom
	return nil
}

func (c *RecordPriceChangeCommand) setCreatedBy(createdBy *kernel.UUID) error {
	if createdBy != nil {
		if err := createdBy.Validate(); err != nil {
			return err
		}
	}

	c.createdBy = createdBy
	return nil
}

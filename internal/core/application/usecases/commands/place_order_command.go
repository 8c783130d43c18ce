package commands

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("order must contain at least one line")
)

// OrderLine describes one requested product in an order placement.
// The caller never supplies a price: unit prices are resolved from the
// price ledger by the handler at placement time.
type OrderLine struct {
	// ProductID is the requested product.
	ProductID kernel.UUID

	// Quantity is the number of units, between 1 and 999.
	Quantity int

	// ModifierTotal is the signed sum of option modifiers for the line.
	ModifierTotal kernel.Money
}

// PlaceOrderCommand represents a request to place a new order.
// Line prices are resolved from the ledger and frozen into the order;
// later price changes never affect an already placed order.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	organizationID kernel.UUID
	tableID        *kernel.UUID
	lines          []OrderLine
	pricedAt       *time.Time

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// tableID is nil for takeaway orders. pricedAt, when non-nil, prices the
// lines as of that moment instead of the current ledger head.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	organizationID kernel.UUID,
	tableID *kernel.UUID,
	lines []OrderLine,
	pricedAt *time.Time,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrganizationID(organizationID),
		cmd.setTableID(tableID),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.pricedAt = pricedAt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrganizationID returns the owning tenant.
func (c PlaceOrderCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// TableID returns the optional table reference, nil for takeaway orders.
func (c PlaceOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

// PricedAt returns the optional point-in-time pricing moment.
func (c PlaceOrderCommand) PricedAt() *time.Time {
	return c.pricedAt
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *PlaceOrderCommand) setTableID(tableID *kernel.UUID) error {
	if tableID != nil {
		if err := tableID.Validate(); err != nil {
			return err
		}
	}

	c.tableID = tableID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for i, line := range lines {
		if err := errors.Join(
			line.ProductID.Validate(),
			line.ModifierTotal.Validate(),
		); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("line %d", i), err)
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidError(fmt.Sprintf("line %d: quantity must be positive", i))
		}
	}

	c.lines = lines
	return nil
}

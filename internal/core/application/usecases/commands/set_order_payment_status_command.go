package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/guard"
)

var ErrSetOrderPaymentStatusCommandIsNotConstructed = errors.New(
	"SetOrderPaymentStatusCommand must be created via NewSetOrderPaymentStatusCommand constructor",
)

// SetOrderPaymentStatusCommand represents a request to update an order's
// payment status. Refunds are only accepted for paid orders.
type SetOrderPaymentStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	organizationID kernel.UUID
	target         order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewSetOrderPaymentStatusCommand creates a command to change an order's
// payment status.
func NewSetOrderPaymentStatusCommand(
	orderID kernel.UUID,
	organizationID kernel.UUID,
	target order.PaymentStatus,
) (SetOrderPaymentStatusCommand, error) {
	cmd := SetOrderPaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrganizationID(organizationID),
		cmd.setTarget(target),
	); err != nil {
		return SetOrderPaymentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetOrderPaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderPaymentStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c SetOrderPaymentStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrganizationID returns the owning tenant.
func (c SetOrderPaymentStatusCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Target returns the requested payment status.
func (c SetOrderPaymentStatusCommand) Target() order.PaymentStatus {
	return c.target
}

func (c *SetOrderPaymentStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetOrderPaymentStatusCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *SetOrderPaymentStatusCommand) setTarget(target order.PaymentStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

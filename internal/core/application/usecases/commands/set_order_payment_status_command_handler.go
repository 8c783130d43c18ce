package commands

import (
	"context"

	"tableside/internal/pkg/errs"
)

// SetOrderPaymentStatusCommandHandler handles payment status updates.
type SetOrderPaymentStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderPaymentStatusCommandHandler creates a handler for payment
// status updates. Requires an OrderUoWFactory for transactional persistence.
func NewSetOrderPaymentStatusCommandHandler(uowFactory OrderUoWFactory) SetOrderPaymentStatusCommandHandler {
	return SetOrderPaymentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment status command.
func (h *SetOrderPaymentStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderPaymentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	aggregate, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.OrganizationID().IsEqual(cmd.OrganizationID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	if err = aggregate.SetPaymentStatus(cmd.Target()); err != nil {
		return err
	}

	if err = orders.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"tableside/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles order status transitions.
// Loads the order, applies the workflow transition on the aggregate, and
// persists the new status. Pricing fields are never touched: totals were
// frozen at placement and transitions only move the status column.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns a validation error for transitions the workflow forbids and a
// not-found error when the order does not belong to the organization.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = orders.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

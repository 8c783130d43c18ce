package commands

import (
	"context"
	"errors"

	"tableside/internal/pkg/errs"
)

// RefreshPriceProjectionsCommandHandler reconciles product price projections
// with the ledger. Products without any ledger entry are left untouched.
// All repairs occur within a single transaction.
type RefreshPriceProjectionsCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewRefreshPriceProjectionsCommandHandler creates a handler for projection
// reconciliation. Requires a PricingUoWFactory for transactional persistence.
func NewRefreshPriceProjectionsCommandHandler(uowFactory PricingUoWFactory) RefreshPriceProjectionsCommandHandler {
	return RefreshPriceProjectionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
// Reads the ledger head for every product and rewrites projections that
// disagree with it.
func (h *RefreshPriceProjectionsCommandHandler) Handle(ctx context.Context, cmd RefreshPriceProjectionsCommand) error {
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

	products := uow.ProductRepository()
	ledger := uow.PriceLedgerRepository()

	all, err := products.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range all {
		latest, err := ledger.GetLatest(ctx, aggregate.OrganizationID(), aggregate.ID())
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return err
		}

		current := aggregate.CurrentPrice()
		if current != nil && current.IsEqual(latest.Price()) {
			continue
		}

		if err = aggregate.RefreshPriceProjection(latest.Price()); err != nil {
			return err
		}
		if err = products.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

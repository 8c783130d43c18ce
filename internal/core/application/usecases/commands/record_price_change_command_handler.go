package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"
	"tableside/internal/pkg/errs"
)

// RecordPriceChangeCommandHandler appends entries to the price ledger.
// Resolves the previous price from the current head of the ledger, enforces
// the reason-specific preconditions, and refreshes the product's denormalized
// current-price projection inside the same transaction.
//
// Existing ledger entries are never touched: corrections and every other
// change append a new entry.
type RecordPriceChangeCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewRecordPriceChangeCommandHandler creates a handler for price recording.
// Requires a PricingUoWFactory for transactional persistence.
func NewRecordPriceChangeCommandHandler(uowFactory PricingUoWFactory) RecordPriceChangeCommandHandler {
	return RecordPriceChangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the price change command.
// All precondition failures are reported before anything is written.
func (h *RecordPriceChangeCommandHandler) Handle(ctx context.Context, cmd RecordPriceChangeCommand) error {
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

	ledger := uow.PriceLedgerRepository()
	latest, err := ledger.GetLatest(ctx, cmd.OrganizationID(), cmd.ProductID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = checkReasonPrecondition(cmd, latest); err != nil {
		return err
	}

	var previousPrice *kernel.Money
	if latest != nil {
		p := latest.Price()
		previousPrice = &p
	}

	entry, err := pricing.NewPriceEntry(
		kernel.NewUUID(),
		cmd.OrganizationID(),
		cmd.ProductID(),
		cmd.Price(),
		previousPrice,
		cmd.Reason(),
		cmd.Notes(),
		cmd.EffectiveFrom(),
		cmd.CreatedBy(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = ledger.Append(ctx, entry); err != nil {
		return err
	}

	if err = h.refreshProjection(ctx, uow, cmd, latest); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// refreshProjection updates the product's current-price field when the new
// entry supersedes the previous head of the ledger. A backdated entry leaves
// the projection alone.
func (h *RecordPriceChangeCommandHandler) refreshProjection(
	ctx context.Context,
	uow PricingUoW,
	cmd RecordPriceChangeCommand,
	latest *pricing.PriceEntry,
) error {
	if latest != nil && cmd.EffectiveFrom().Before(latest.EffectiveFrom()) {
		return nil
	}

	products := uow.ProductRepository()
	aggregate, err := products.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if !aggregate.OrganizationID().IsEqual(cmd.OrganizationID()) {
		return errs.NewObjectNotFoundError("productID", cmd.ProductID())
	}

	if err = aggregate.RefreshPriceProjection(cmd.Price()); err != nil {
		return err
	}

	return products.Update(ctx, aggregate)
}

func checkReasonPrecondition(cmd RecordPriceChangeCommand, latest *pricing.PriceEntry) error {
	switch cmd.Reason() {
	case pricing.Initial:
		if latest != nil {
			return errs.NewObjectAlreadyExistsError("initial price for product", cmd.ProductID())
		}
	case pricing.PriceIncrease:
		if latest == nil {
			return errs.NewValueIsInvalidError("price increase requires an existing price")
		}
		cmp, err := cmd.Price().Cmp(latest.Price())
		if err != nil {
			return err
		}
		if cmp <= 0 {
			return errs.NewValueIsInvalidError(
				fmt.Sprintf("price increase requires a price greater than %s", latest.Price()))
		}
	case pricing.PriceDecrease:
		if latest == nil {
			return errs.NewValueIsInvalidError("price decrease requires an existing price")
		}
		cmp, err := cmd.Price().Cmp(latest.Price())
		if err != nil {
			return err
		}
		if cmp >= 0 {
			return errs.NewValueIsInvalidError(
				fmt.Sprintf("price decrease requires a price less than %s", latest.Price()))
		}
	}

	return nil
}

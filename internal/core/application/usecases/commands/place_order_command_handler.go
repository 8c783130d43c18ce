package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/services"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves each line's unit price from the price ledger, freezes the priced
// items into a new pending order, and persists it atomically. The ledger
// read and the order write happen in the same transaction so a concurrent
// price change cannot split an order across two price generations.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	pricer     services.OrderPricer
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlacementUoWFactory for transactional persistence.
func NewPlaceOrderCommandHandler(uowFactory PlacementUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     services.NewOrderPricer(),
	}
}

// Handle processes the order placement command.
// Returns an error if any line's product has no ledger price, leaving
// nothing persisted.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	lines, err := h.resolvePrices(ctx, uow, cmd)
	if err != nil {
		return err
	}

	items, err := h.pricer.PriceItems(lines)
	if err != nil {
		return err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrganizationID(),
		cmd.TableID(),
		items,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *PlaceOrderCommandHandler) resolvePrices(
	ctx context.Context,
	uow PlacementUoW,
	cmd PlaceOrderCommand,
) ([]services.PricedLine, error) {
	ledger := uow.PriceLedgerRepository()

	// Resolve against a point in time even when no explicit pricedAt is
	// given: the ledger head may be a scheduled entry that is not yet in
	// effect, and such an entry must never be frozen into an order.
	pricedAt := time.Now().UTC()
	if at := cmd.PricedAt(); at != nil {
		pricedAt = *at
	}

	lines := make([]services.PricedLine, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		entry, err := ledger.GetAt(ctx, cmd.OrganizationID(), line.ProductID, pricedAt)
		if err != nil {
			return nil, err
		}

		lines = append(lines, services.PricedLine{
			Entry:         entry,
			Quantity:      line.Quantity,
			ModifierTotal: line.ModifierTotal,
		})
	}

	return lines, nil
}

package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"
	"tableside/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles product registration.
// Persists the product, appends the initial entry to its price ledger and
// sets the current-price projection, all within one transaction.
type CreateProductCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product registration.
// Requires a PricingUoWFactory for transactional persistence.
func NewCreateProductCommandHandler(uowFactory PricingUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := product.NewProduct(
		cmd.ProductID(),
		cmd.OrganizationID(),
		cmd.CategoryID(),
		cmd.Name(),
		cmd.Description(),
	)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	entry, err := pricing.NewPriceEntry(
		kernel.NewUUID(),
		cmd.OrganizationID(),
		cmd.ProductID(),
		cmd.InitialPrice(),
		nil,
		pricing.Initial,
		nil,
		now,
		nil,
		now,
	)
	if err != nil {
		return err
	}

	if err = aggregate.RefreshPriceProjection(cmd.InitialPrice()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.PriceLedgerRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

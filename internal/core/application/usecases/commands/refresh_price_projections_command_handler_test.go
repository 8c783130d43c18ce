package commands_test

import (
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/product"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreTestProduct(t *testing.T, organizationID kernel.UUID, currentPrice *kernel.Money) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(
		kernel.NewUUID(), organizationID, nil, "Margherita", nil, currentPrice, true)
	require.NoError(t, err)
	return p
}

func TestRefreshPriceProjectionsCommandHandler_Handle(t *testing.T) {
	organizationID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("should repair drifted projection", func(t *testing.T) {
		ctx := t.Context()
		stale := mustMoney(t, "9.00", "USD")
		aggregate := restoreTestProduct(t, organizationID, &stale)
		entry := newLedgerEntry(t, organizationID, aggregate.ID(), "12.00", now)

		products := new(MockProductRepository)
		ledger := new(MockPriceLedgerRepository)
		uow := new(MockPricingUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(products)
		uow.On("PriceLedgerRepository").Return(ledger)
		products.On("GetAll", mock.Anything).Return([]*product.Product{aggregate}, nil).Once()
		ledger.On("GetLatest", mock.Anything, organizationID, aggregate.ID()).Return(entry, nil).Once()
		products.On("Update", mock.Anything, aggregate).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		factory := new(MockPricingUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRefreshPriceProjectionsCommandHandler(factory)
		cmd := commands.NewRefreshPriceProjectionsCommand()
		require.NoError(t, h.Handle(ctx, cmd))

		require.NotNil(t, aggregate.CurrentPrice())
		assert.True(t, aggregate.CurrentPrice().IsEqual(entry.Price()))
	})

	t.Run("should leave matching projection untouched", func(t *testing.T) {
		ctx := t.Context()
		current := mustMoney(t, "12.00", "USD")
		aggregate := restoreTestProduct(t, organizationID, &current)
		entry := newLedgerEntry(t, organizationID, aggregate.ID(), "12.00", now)

		products := new(MockProductRepository)
		ledger := new(MockPriceLedgerRepository)
		uow := new(MockPricingUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(products)
		uow.On("PriceLedgerRepository").Return(ledger)
		products.On("GetAll", mock.Anything).Return([]*product.Product{aggregate}, nil).Once()
		ledger.On("GetLatest", mock.Anything, organizationID, aggregate.ID()).Return(entry, nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		factory := new(MockPricingUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRefreshPriceProjectionsCommandHandler(factory)
		cmd := commands.NewRefreshPriceProjectionsCommand()
		require.NoError(t, h.Handle(ctx, cmd))
		products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should skip products without ledger entries", func(t *testing.T) {
		ctx := t.Context()
		aggregate := restoreTestProduct(t, organizationID, nil)

		products := new(MockProductRepository)
		ledger := new(MockPriceLedgerRepository)
		uow := new(MockPricingUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(products)
		uow.On("PriceLedgerRepository").Return(ledger)
		products.On("GetAll", mock.Anything).Return([]*product.Product{aggregate}, nil).Once()
		ledger.On("GetLatest", mock.Anything, organizationID, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("productID", aggregate.ID())).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		factory := new(MockPricingUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewRefreshPriceProjectionsCommandHandler(factory)
		cmd := commands.NewRefreshPriceProjectionsCommand()
		require.NoError(t, h.Handle(ctx, cmd))
		assert.Nil(t, aggregate.CurrentPrice())
		products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

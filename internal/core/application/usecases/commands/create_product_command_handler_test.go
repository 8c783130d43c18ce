package commands_test

import (
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"
	"tableside/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	organizationID := kernel.NewUUID()
	price := mustMoney(t, "12.50", "USD")
	cmd, err := commands.NewCreateProductCommand(productID, organizationID, nil, "Margherita", nil, price)
	require.NoError(t, err)

	products := new(MockProductRepository)
	ledger := new(MockPriceLedgerRepository)
	uow := new(MockPricingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("PriceLedgerRepository").Return(ledger).Once(),
		ledger.On("Append", mock.Anything, mock.AnythingOfType("*pricing.PriceEntry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	created := products.Calls[0].Arguments.Get(1).(*product.Product)
	require.NotNil(t, created.CurrentPrice())
	assert.True(t, created.CurrentPrice().IsEqual(price))
	assert.True(t, created.Active())

	appended := ledger.Calls[0].Arguments.Get(1).(*pricing.PriceEntry)
	assert.Equal(t, pricing.Initial, appended.Reason())
	assert.Nil(t, appended.PreviousPrice())
	assert.True(t, appended.Price().IsEqual(price))
	assert.True(t, appended.ProductID().IsEqual(productID))

	products.AssertExpectations(t)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateProductCommand(t *testing.T) {
	productID := kernel.NewUUID()
	organizationID := kernel.NewUUID()
	price := mustMoney(t, "12.50", "USD")

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(productID, organizationID, nil, "", nil, price)
		require.Error(t, err)
	})

	t.Run("should reject negative initial price", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(
			productID, organizationID, nil, "Margherita", nil, mustMoney(t, "-1", "USD"))
		require.Error(t, err)
	})

	t.Run("should accept zero price for complimentary items", func(t *testing.T) {
		cmd, err := commands.NewCreateProductCommand(
			productID, organizationID, nil, "Tap water", nil, mustMoney(t, "0", "USD"))
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})
}

package commands_test

import (
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	organizationID := kernel.NewUUID()
	productID := kernel.NewUUID()
	entry := newLedgerEntry(t, organizationID, productID, "12.50", time.Now().UTC().Add(-time.Hour))

	cmd, err := commands.NewPlaceOrderCommand(orderID, organizationID, nil, []commands.OrderLine{
		{ProductID: productID, Quantity: 2, ModifierTotal: mustMoney(t, "1.00", "USD")},
	}, nil)
	require.NoError(t, err)

	ledger := new(MockPriceLedgerRepository)
	orders := new(MockOrderRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PriceLedgerRepository").Return(ledger).Once(),
		ledger.On("GetAt", mock.Anything, organizationID, productID, mock.AnythingOfType("time.Time")).
			Return(entry, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	placed := orders.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, order.Pending, placed.Status())
	assert.Equal(t, order.Unpaid, placed.PaymentStatus())
	assert.True(t, placed.TotalAmount().IsEqual(mustMoney(t, "26.00", "USD")))

	require.Len(t, placed.Items(), 1)
	item := placed.Items()[0]
	require.NotNil(t, item.PriceEntryID())
	assert.True(t, item.PriceEntryID().IsEqual(entry.ID()))
	assert.True(t, item.UnitPrice().IsEqual(entry.Price()))

	ledger.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_PointInTimePricing(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	organizationID := kernel.NewUUID()
	productID := kernel.NewUUID()
	at := time.Now().UTC().Add(-48 * time.Hour)
	entry := newLedgerEntry(t, organizationID, productID, "9.00", at.Add(-time.Hour))

	cmd, err := commands.NewPlaceOrderCommand(orderID, organizationID, nil, []commands.OrderLine{
		{ProductID: productID, Quantity: 1, ModifierTotal: mustMoney(t, "0", "USD")},
	}, &at)
	require.NoError(t, err)

	ledger := new(MockPriceLedgerRepository)
	orders := new(MockOrderRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PriceLedgerRepository").Return(ledger).Once(),
		ledger.On("GetAt", mock.Anything, organizationID, productID, at).Return(entry, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	ledger.AssertNotCalled(t, "GetLatest", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_IgnoresScheduledFuturePrice(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	organizationID := kernel.NewUUID()
	productID := kernel.NewUUID()

	// The ledger head is a scheduled entry a week out; the entry in effect
	// today is the one that must be frozen into the order. The handler has
	// to ask for the price as of now, not for the newest row.
	currentEntry := newLedgerEntry(t, organizationID, productID, "5.00", time.Now().UTC().Add(-time.Hour))

	cmd, err := commands.NewPlaceOrderCommand(orderID, organizationID, nil, []commands.OrderLine{
		{ProductID: productID, Quantity: 1, ModifierTotal: mustMoney(t, "0", "USD")},
	}, nil)
	require.NoError(t, err)

	ledger := new(MockPriceLedgerRepository)
	orders := new(MockOrderRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PriceLedgerRepository").Return(ledger).Once(),
		ledger.On("GetAt", mock.Anything, organizationID, productID, mock.MatchedBy(func(at time.Time) bool {
			return time.Since(at).Abs() < 5*time.Second
		})).Return(currentEntry, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	placed := orders.Calls[0].Arguments.Get(1).(*order.Order)
	assert.True(t, placed.TotalAmount().IsEqual(mustMoney(t, "5.00", "USD")))
	ledger.AssertNotCalled(t, "GetLatest", mock.Anything, mock.Anything, mock.Anything)
	ledger.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_MissingPrice(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	organizationID := kernel.NewUUID()
	productID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, organizationID, nil, []commands.OrderLine{
		{ProductID: productID, Quantity: 1, ModifierTotal: mustMoney(t, "0", "USD")},
	}, nil)
	require.NoError(t, err)

	ledger := new(MockPriceLedgerRepository)
	orders := new(MockOrderRepository)
	uow := new(MockPlacementUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PriceLedgerRepository").Return(ledger).Once(),
		ledger.On("GetAt", mock.Anything, organizationID, productID, mock.AnythingOfType("time.Time")).
			Return(nil, errs.NewObjectNotFoundError("productID", productID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockPlacementUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory)
	err := h.Handle(ctx, commands.PlaceOrderCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

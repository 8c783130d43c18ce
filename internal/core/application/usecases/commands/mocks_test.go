package commands_test

import (
	"context"
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/pricing"
	"tableside/internal/core/domain/model/product"
	"tableside/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context, organizationID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPriceLedgerRepository struct{ mock.Mock }

func (m *MockPriceLedgerRepository) Append(ctx context.Context, entry *pricing.PriceEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockPriceLedgerRepository) GetLatest(
	ctx context.Context, organizationID, productID kernel.UUID,
) (*pricing.PriceEntry, error) {
	args := m.Called(ctx, organizationID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PriceEntry), args.Error(1)
}

func (m *MockPriceLedgerRepository) GetAt(
	ctx context.Context, organizationID, productID kernel.UUID, at time.Time,
) (*pricing.PriceEntry, error) {
	args := m.Called(ctx, organizationID, productID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.PriceEntry), args.Error(1)
}

func (m *MockPriceLedgerRepository) GetHistory(
	ctx context.Context, organizationID, productID kernel.UUID, filter ports.PriceHistoryFilter,
) ([]*pricing.PriceEntry, error) {
	args := m.Called(ctx, organizationID, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.PriceEntry), args.Error(1)
}

func (m *MockPriceLedgerRepository) GetInRange(
	ctx context.Context, organizationID, productID kernel.UUID, from, to time.Time,
) ([]*pricing.PriceEntry, error) {
	args := m.Called(ctx, organizationID, productID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.PriceEntry), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAllActive(
	ctx context.Context, organizationID kernel.UUID,
) ([]*product.Product, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPricingUoW struct{ mock.Mock }

func (m *MockPricingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPricingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPricingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPricingUoW) PriceLedgerRepository() ports.PriceLedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.PriceLedgerRepository)
}

func (m *MockPricingUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockPricingUoWFactory struct{ mock.Mock }

func (m *MockPricingUoWFactory) Create() commands.PricingUoW {
	args := m.Called()
	return args.Get(0).(commands.PricingUoW)
}

type MockPlacementUoW struct{ mock.Mock }

func (m *MockPlacementUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlacementUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlacementUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlacementUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPlacementUoW) PriceLedgerRepository() ports.PriceLedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.PriceLedgerRepository)
}

type MockPlacementUoWFactory struct{ mock.Mock }

func (m *MockPlacementUoWFactory) Create() commands.PlacementUoW {
	args := m.Called()
	return args.Get(0).(commands.PlacementUoW)
}

func mustMoney(t *testing.T, amount, currency string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount, currency)
	require.NoError(t, err)
	return m
}

func newLedgerEntry(t *testing.T, organizationID, productID kernel.UUID, price string, effectiveFrom time.Time) *pricing.PriceEntry {
	t.Helper()
	entry, err := pricing.NewPriceEntry(
		kernel.NewUUID(),
		organizationID,
		productID,
		mustMoney(t, price, "USD"),
		nil,
		pricing.Initial,
		nil,
		effectiveFrom,
		nil,
		effectiveFrom,
	)
	require.NoError(t, err)
	return entry
}

package product_test

import (
	"testing"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/product"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount, "USD")
	require.NoError(t, err)
	return m
}

func TestNewProduct(t *testing.T) {
	t.Run("should create active product without price projection", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), nil, "Margherita", nil)

		require.NoError(t, err)
		assert.True(t, p.Active())
		assert.Nil(t, p.CurrentPrice())
		assert.Equal(t, "Margherita", p.Name())
	})

	t.Run("should accept optional category and description", func(t *testing.T) {
		categoryID := kernel.NewUUID()
		description := "wood-fired, basil"

		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), &categoryID, "Margherita", &description)

		require.NoError(t, err)
		require.NotNil(t, p.CategoryID())
		assert.True(t, categoryID.IsEqual(*p.CategoryID()))
		require.NotNil(t, p.Description())
		assert.Equal(t, description, *p.Description())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), nil, "", nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero-value identifiers", func(t *testing.T) {
		_, err := product.NewProduct(kernel.UUID{}, kernel.NewUUID(), nil, "Margherita", nil)
		require.Error(t, err)

		_, err = product.NewProduct(kernel.NewUUID(), kernel.UUID{}, nil, "Margherita", nil)
		require.Error(t, err)
	})

	t.Run("zero-value product should fail validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_RefreshPriceProjection(t *testing.T) {
	t.Run("should overwrite the projection", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), nil, "Margherita", nil)
		require.NoError(t, err)

		require.NoError(t, p.RefreshPriceProjection(money(t, "11.50")))

		require.NotNil(t, p.CurrentPrice())
		assert.True(t, p.CurrentPrice().IsEqual(money(t, "11.50")))

		require.NoError(t, p.RefreshPriceProjection(money(t, "12.00")))
		assert.True(t, p.CurrentPrice().IsEqual(money(t, "12.00")))
	})

	t.Run("should reject zero-value money", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), nil, "Margherita", nil)
		require.NoError(t, err)

		require.Error(t, p.RefreshPriceProjection(kernel.Money{}))
		assert.Nil(t, p.CurrentPrice())
	})
}

func TestProduct_ActivationLifecycle(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), nil, "Margherita", nil)
	require.NoError(t, err)

	p.Deactivate()
	assert.False(t, p.Active())

	p.Activate()
	assert.True(t, p.Active())
}

func TestRestoreProduct(t *testing.T) {
	t.Run("should restore with projection and inactive flag", func(t *testing.T) {
		price := money(t, "8.00")

		p, err := product.RestoreProduct(
			kernel.NewUUID(), kernel.NewUUID(), nil, "Margherita", nil, &price, false)

		require.NoError(t, err)
		assert.False(t, p.Active())
		require.NotNil(t, p.CurrentPrice())
		assert.True(t, p.CurrentPrice().IsEqual(price))
	})
}

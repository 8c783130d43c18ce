package kernel_test

import (
	"fmt"
	"testing"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount, currency string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount, currency)
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("should create money with valid currency", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(100), "USD")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "USD", m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromInt(100)))
	})

	t.Run("should allow negative amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(-5), "EUR")

		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})

	t.Run("should reject invalid currency codes", func(t *testing.T) {
		invalidCurrencies := []string{"", "US", "USDT", "usd", "U1D"}

		for _, currency := range invalidCurrencies {
			t.Run(fmt.Sprintf("should reject %q", currency), func(t *testing.T) {
				_, err := kernel.NewMoney(decimal.NewFromInt(1), currency)
				require.Error(t, err)
			})
		}
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		m, err := kernel.MoneyFromString("12.50", "USD")

		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.RequireFromString("12.5")))
	})

	t.Run("should reject non-numeric amount", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve", "USD")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should add amounts in same currency", func(t *testing.T) {
		a := mustMoney(t, "10.25", "USD")
		b := mustMoney(t, "4.75", "USD")

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.True(t, sum.Amount().Equal(decimal.NewFromInt(15)))
	})

	t.Run("should subtract amounts in same currency", func(t *testing.T) {
		a := mustMoney(t, "10", "USD")
		b := mustMoney(t, "4", "USD")

		diff, err := a.Sub(b)

		require.NoError(t, err)
		assert.True(t, diff.Amount().Equal(decimal.NewFromInt(6)))
	})

	t.Run("should multiply by integer quantity", func(t *testing.T) {
		unit := mustMoney(t, "9.99", "USD")

		total := unit.MulInt(3)

		assert.True(t, total.Amount().Equal(decimal.RequireFromString("29.97")))
		assert.Equal(t, "USD", total.Currency())
	})

	t.Run("should not accumulate floating point error", func(t *testing.T) {
		unit := mustMoney(t, "0.1", "USD")

		total := unit.MulInt(3)

		assert.True(t, total.Amount().Equal(decimal.RequireFromString("0.3")))
	})

	t.Run("should reject mixed currencies", func(t *testing.T) {
		usd := mustMoney(t, "10", "USD")
		eur := mustMoney(t, "10", "EUR")

		_, addErr := usd.Add(eur)
		_, subErr := usd.Sub(eur)
		_, cmpErr := usd.Cmp(eur)

		require.ErrorIs(t, addErr, errs.ErrValueIsInvalid)
		require.ErrorIs(t, subErr, errs.ErrValueIsInvalid)
		require.ErrorIs(t, cmpErr, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Cmp(t *testing.T) {
	smaller := mustMoney(t, "90", "USD")
	bigger := mustMoney(t, "100", "USD")

	cmp, err := smaller.Cmp(bigger)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = bigger.Cmp(smaller)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	cmp, err = bigger.Cmp(bigger)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)
}

func TestMoney_Validate(t *testing.T) {
	t.Run("zero value should be invalid", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})

	t.Run("constructed value should be valid", func(t *testing.T) {
		require.NoError(t, mustMoney(t, "1", "USD").Validate())
	})
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "12.5 USD", mustMoney(t, "12.50", "USD").String())
}

func TestMoney_IsEqual(t *testing.T) {
	a := mustMoney(t, "10.00", "USD")
	b := mustMoney(t, "10", "USD")
	c := mustMoney(t, "10", "EUR")

	assert.True(t, a.IsEqual(b), "trailing zeros should not affect equality")
	assert.False(t, a.IsEqual(c))
}

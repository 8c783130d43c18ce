package pricing_test

import (
	"fmt"
	"testing"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"
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

func newTestEntry(t *testing.T, price string, previous *string, reason pricing.ChangeReason) *pricing.PriceEntry {
	t.Helper()

	var previousPrice *kernel.Money
	if previous != nil {
		p := money(t, *previous)
		previousPrice = &p
	}

	entry, err := pricing.NewPriceEntry(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		money(t, price),
		previousPrice,
		reason,
		nil,
		time.Now(),
		nil,
		time.Now(),
	)
	require.NoError(t, err)
	return entry
}

func strPtr(s string) *string { return &s }

func TestNewPriceEntry(t *testing.T) {
	now := time.Now()

	t.Run("should create initial entry without previous price", func(t *testing.T) {
		entry := newTestEntry(t, "9.50", nil, pricing.Initial)

		assert.Nil(t, entry.PreviousPrice())
		assert.Equal(t, pricing.Initial, entry.Reason())
		assert.True(t, entry.Price().IsEqual(money(t, "9.50")))
		require.NoError(t, entry.Validate())
	})

	t.Run("should create change entry carrying previous price", func(t *testing.T) {
		entry := newTestEntry(t, "12.00", strPtr("9.50"), pricing.PriceIncrease)

		require.NotNil(t, entry.PreviousPrice())
		assert.True(t, entry.PreviousPrice().IsEqual(money(t, "9.50")))
	})

	t.Run("should allow zero price", func(t *testing.T) {
		// a free item during a promotion is legitimate
		entry := newTestEntry(t, "0", strPtr("5.00"), pricing.Promotion)
		assert.True(t, entry.Price().IsZero())
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := pricing.NewPriceEntry(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			money(t, "-1"), nil, pricing.Initial, nil, now, nil, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid reason", func(t *testing.T) {
		_, err := pricing.NewPriceEntry(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			money(t, "1"), nil, pricing.ReasonUnknown, nil, now, nil, now)

		require.Error(t, err)
	})

	t.Run("should reject zero effectiveFrom and createdAt", func(t *testing.T) {
		_, err := pricing.NewPriceEntry(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			money(t, "1"), nil, pricing.Initial, nil, time.Time{}, nil, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = pricing.NewPriceEntry(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			money(t, "1"), nil, pricing.Initial, nil, now, nil, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero-value identifiers", func(t *testing.T) {
		_, err := pricing.NewPriceEntry(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			money(t, "1"), nil, pricing.Initial, nil, now, nil, now)
		require.Error(t, err)
	})

	t.Run("zero-value entry should fail validation", func(t *testing.T) {
		var entry pricing.PriceEntry
		require.ErrorIs(t, entry.Validate(), pricing.ErrPriceEntryIsNotConstructed)
	})

	t.Run("should carry optional notes and author", func(t *testing.T) {
		author := kernel.NewUUID()
		entry, err := pricing.NewPriceEntry(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			money(t, "1"), nil, pricing.Initial, strPtr("menu launch"), now, &author, now)

		require.NoError(t, err)
		require.NotNil(t, entry.Notes())
		assert.Equal(t, "menu launch", *entry.Notes())
		require.NotNil(t, entry.CreatedBy())
		assert.True(t, author.IsEqual(*entry.CreatedBy()))
	})
}

func TestChangeReason(t *testing.T) {
	t.Run("should round-trip all wire names", func(t *testing.T) {
		reasons := []pricing.ChangeReason{
			pricing.Initial,
			pricing.PriceIncrease,
			pricing.PriceDecrease,
			pricing.Promotion,
			pricing.Correction,
			pricing.Seasonal,
			pricing.CostAdjustment,
			pricing.TaxChange,
			pricing.Other,
		}

		for _, reason := range reasons {
			t.Run(reason.String(), func(t *testing.T) {
				parsed, err := pricing.ChangeReasonFromString(reason.String())
				require.NoError(t, err)
				assert.Equal(t, reason, parsed)
				require.NoError(t, reason.Validate())
			})
		}
	})

	t.Run("should reject unknown names and values", func(t *testing.T) {
		_, err := pricing.ChangeReasonFromString("markdown")
		require.Error(t, err)

		_, err = pricing.ChangeReasonFromString("unknown")
		require.Error(t, err)

		for _, reason := range []pricing.ChangeReason{pricing.ReasonUnknown, pricing.ChangeReason(-1), pricing.ChangeReason(10)} {
			t.Run(fmt.Sprintf("value %d", int(reason)), func(t *testing.T) {
				require.Error(t, reason.Validate())
				assert.Equal(t, "unknown", reason.String())
			})
		}
	})
}

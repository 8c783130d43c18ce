package commands_test

import (
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordPriceChangeCommand(t *testing.T) {
	organizationID := kernel.NewUUID()
	productID := kernel.NewUUID()
	price := mustMoney(t, "12.50", "USD")
	effectiveFrom := time.Now().UTC()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewRecordPriceChangeCommand(
			organizationID, productID, price, pricing.Seasonal, nil, effectiveFrom, nil)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, pricing.Seasonal, cmd.Reason())
		assert.True(t, cmd.Price().IsEqual(price))
	})

	t.Run("should reject invalid organization id", func(t *testing.T) {
		_, err := commands.NewRecordPriceChangeCommand(
			kernel.UUID{}, productID, price, pricing.Seasonal, nil, effectiveFrom, nil)
		require.Error(t, err)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := commands.NewRecordPriceChangeCommand(
			organizationID, productID, mustMoney(t, "-1", "USD"), pricing.Seasonal, nil, effectiveFrom, nil)
		require.Error(t, err)
	})

	t.Run("should reject invalid reason", func(t *testing.T) {
		_, err := commands.NewRecordPriceChangeCommand(
			organizationID, productID, price, pricing.ReasonUnknown, nil, effectiveFrom, nil)
		require.Error(t, err)
	})

	t.Run("should reject zero effective-from timestamp", func(t *testing.T) {
		_, err := commands.NewRecordPriceChangeCommand(
			organizationID, productID, price, pricing.Seasonal, nil, time.Time{}, nil)
		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.RecordPriceChangeCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRecordPriceChangeCommandIsNotConstructed)
	})
}

func TestRecordPriceChangeCommandConvenienceConstructors(t *testing.T) {
	organizationID := kernel.NewUUID()
	productID := kernel.NewUUID()
	price := mustMoney(t, "9.99", "USD")
	effectiveFrom := time.Now().UTC()

	tests := []struct {
		name string
		make func() (commands.RecordPriceChangeCommand, error)
		want pricing.ChangeReason
	}{
		{
			name: "initial",
			make: func() (commands.RecordPriceChangeCommand, error) {
				return commands.NewRecordInitialPriceCommand(
					organizationID, productID, price, nil, effectiveFrom, nil)
			},
			want: pricing.Initial,
		},
		{
			name: "increase",
			make: func() (commands.RecordPriceChangeCommand, error) {
				return commands.NewRecordPriceIncreaseCommand(
					organizationID, productID, price, nil, effectiveFrom, nil)
			},
			want: pricing.PriceIncrease,
		},
		{
			name: "decrease",
			make: func() (commands.RecordPriceChangeCommand, error) {
				return commands.NewRecordPriceDecreaseCommand(
					organizationID, productID, price, nil, effectiveFrom, nil)
			},
			want: pricing.PriceDecrease,
		},
		{
			name: "correction",
			make: func() (commands.RecordPriceChangeCommand, error) {
				return commands.NewRecordPriceCorrectionCommand(
					organizationID, productID, price, nil, effectiveFrom, nil)
			},
			want: pricing.Correction,
		},
		{
			name: "promotion",
			make: func() (commands.RecordPriceChangeCommand, error) {
				return commands.NewRecordPromotionalPriceCommand(
					organizationID, productID, price, nil, effectiveFrom, nil)
			},
			want: pricing.Promotion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := tt.make()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Reason())
		})
	}
}

package commands_test

import (
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	organizationID := kernel.NewUUID()
	lines := []commands.OrderLine{
		{ProductID: kernel.NewUUID(), Quantity: 2, ModifierTotal: mustMoney(t, "0", "USD")},
	}

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(orderID, organizationID, nil, lines, nil)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Nil(t, cmd.TableID())
		assert.Len(t, cmd.Lines(), 1)
	})

	t.Run("should accept table reference", func(t *testing.T) {
		tableID := kernel.NewUUID()
		cmd, err := commands.NewPlaceOrderCommand(orderID, organizationID, &tableID, lines, nil)
		require.NoError(t, err)
		require.NotNil(t, cmd.TableID())
		assert.True(t, cmd.TableID().IsEqual(tableID))
	})

	t.Run("should accept point-in-time pricing moment", func(t *testing.T) {
		at := time.Now().UTC().Add(-time.Hour)
		cmd, err := commands.NewPlaceOrderCommand(orderID, organizationID, nil, lines, &at)
		require.NoError(t, err)
		require.NotNil(t, cmd.PricedAt())
		assert.True(t, cmd.PricedAt().Equal(at))
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(orderID, organizationID, nil, nil, nil)
		require.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		bad := []commands.OrderLine{
			{ProductID: kernel.NewUUID(), Quantity: 0, ModifierTotal: mustMoney(t, "0", "USD")},
		}
		_, err := commands.NewPlaceOrderCommand(orderID, organizationID, nil, bad, nil)
		require.Error(t, err)
	})

	t.Run("should reject invalid line product id", func(t *testing.T) {
		bad := []commands.OrderLine{
			{ProductID: kernel.UUID{}, Quantity: 1, ModifierTotal: mustMoney(t, "0", "USD")},
		}
		_, err := commands.NewPlaceOrderCommand(orderID, organizationID, nil, bad, nil)
		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}

package commands_test

import (
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	organizationID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(orderID, organizationID, order.Confirmed)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, order.Confirmed, cmd.Target())
	})

	t.Run("should reject invalid order id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, organizationID, order.Confirmed)
		require.Error(t, err)
	})

	t.Run("should reject unknown target status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(orderID, organizationID, order.Unknown)
		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.ChangeOrderStatusCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
	})
}

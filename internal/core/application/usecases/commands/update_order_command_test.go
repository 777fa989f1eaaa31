package commands_test

import (
	"testing"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand(t *testing.T) {
	t.Run("creates a valid command with all parameters", func(t *testing.T) {
		orderID := kernel.NewUUID()
		start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 3)

		cmd, err := commands.NewUpdateOrderCommand(orderID, "69900100", &start, &end, rental.Unknown)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, "69900100", cmd.PostalCode())
		assert.Equal(t, &start, cmd.StartDate())
		assert.Equal(t, &end, cmd.EndDate())
		assert.Equal(t, rental.Unknown, cmd.RequestedStatus())
	})

	t.Run("accepts a bare status change request", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), "", nil, nil, rental.Closed)

		require.NoError(t, err)
		assert.Empty(t, cmd.PostalCode())
		assert.Nil(t, cmd.StartDate())
		assert.Equal(t, rental.Closed, cmd.RequestedStatus())
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(kernel.UUID{}, "", nil, nil, rental.Closed)
		require.Error(t, err)
	})

	t.Run("rejects an out-of-range requested status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), "", nil, nil, rental.Status(99))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.UpdateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
	})
}

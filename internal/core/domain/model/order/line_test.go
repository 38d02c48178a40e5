package order_test

import (
	"strings"
	"testing"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreLine(t *testing.T) {
	id := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	t.Run("restores a valid line", func(t *testing.T) {
		line, err := order.RestoreLine(id, menuItemID, "Margherita", 5.0, 2, "no basil")

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.ID().IsEqual(id))
		assert.True(t, line.MenuItemID().IsEqual(menuItemID))
		assert.Equal(t, 2, line.Quantity())
		assert.InDelta(t, 10.0, line.Subtotal(), 0.0001)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		_, err := order.RestoreLine(id, menuItemID, "Margherita", 5.0, 0, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := order.RestoreLine(id, menuItemID, "", 5.0, 1, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative unit price", func(t *testing.T) {
		_, err := order.RestoreLine(id, menuItemID, "Margherita", -0.5, 1, "")

		require.Error(t, err)
	})

	t.Run("rejects overlong comment", func(t *testing.T) {
		_, err := order.RestoreLine(id, menuItemID, "Margherita", 5.0, 1, strings.Repeat("x", 256))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestLine_Validate(t *testing.T) {
	t.Run("should fail for nil line", func(t *testing.T) {
		var line *order.Line

		require.Equal(t, order.ErrLineIsNotConstructed, line.Validate())
	})

	t.Run("should fail for zero value line", func(t *testing.T) {
		var line order.Line

		require.Equal(t, order.ErrLineIsNotConstructed, line.Validate())
	})
}

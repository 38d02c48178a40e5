package menu_test

import (
	"testing"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid menu item", func(t *testing.T) {
		item, err := menu.NewMenuItem(validID, "Margherita", 9.5, true)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.Equal(t, "Margherita", item.Name())
		assert.InDelta(t, 9.5, item.Price(), 0.0001)
		assert.True(t, item.Available())
	})

	t.Run("should allow zero price", func(t *testing.T) {
		item, err := menu.NewMenuItem(validID, "Tap water", 0, true)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, item.Price(), 0.0001)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := menu.NewMenuItem(invalidID, "Margherita", 9.5, true)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		item, err := menu.NewMenuItem(validID, "", 9.5, true)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		item, err := menu.NewMenuItem(validID, "Margherita", -1, true)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := menu.NewMenuItem(invalidID, "", -2, false)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "price")
	})
}

func TestMenuItem_Validate(t *testing.T) {
	t.Run("should fail for nil menu item", func(t *testing.T) {
		var item *menu.MenuItem

		require.Error(t, item.Validate())
	})

	t.Run("should fail for zero value menu item", func(t *testing.T) {
		var item menu.MenuItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, menu.ErrMenuItemIsNotConstructed, err)
	})
}

func TestMenuItem_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	item1, _ := menu.NewMenuItem(id, "Espresso", 2.5, true)
	item2, _ := menu.NewMenuItem(id, "Espresso doppio", 3.5, false)
	item3, _ := menu.NewMenuItem(kernel.NewUUID(), "Espresso", 2.5, true)

	assert.True(t, item1.IsEqual(item2))
	assert.False(t, item1.IsEqual(item3))
	assert.False(t, item1.IsEqual(nil))
}

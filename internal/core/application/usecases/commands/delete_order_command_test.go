package commands_test

import (
	"testing"

	"waiter/internal/core/application/usecases/commands"
	"waiter/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
}

func TestNewDeleteOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDeleteOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.DeleteOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDeleteOrderCommandIsNotConstructed)
}

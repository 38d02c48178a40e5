package commands_test

import (
	"testing"

	"waiter/internal/core/application/usecases/commands"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewPayOrderCommand(id, order.Card)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Card, cmd.Method())
}

func TestNewPayOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewPayOrderCommand(kernel.UUID{}, order.Cash)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPayOrderCommand_UnknownMethod(t *testing.T) {
	_, err := commands.NewPayOrderCommand(kernel.NewUUID(), order.UnknownMethod)
	require.Error(t, err)
}

func TestPayOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.PayOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPayOrderCommandIsNotConstructed)
}

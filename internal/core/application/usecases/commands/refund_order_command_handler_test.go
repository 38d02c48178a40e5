package commands_test

import (
	"testing"

	"waiter/internal/core/application/usecases/commands"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/pkg/errs"
	"waiter/internal/pkg/orderlock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefundOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Paid)
	cmd, err := commands.NewRefundOrderCommand(aggregate.ID(), "manager", "cold food")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundOrderCommandHandler(factory, orderlock.NewLocker())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Refunded, aggregate.Status())
	require.NotNil(t, aggregate.RefundedBy())
	assert.Equal(t, "manager", *aggregate.RefundedBy())
	require.NotNil(t, aggregate.RefundReason())
	assert.Equal(t, "cold food", *aggregate.RefundReason())
	assert.NotNil(t, aggregate.RefundedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRefundOrderCommandHandler_Handle_NotPaid(t *testing.T) {
	ctx := t.Context()
	aggregate := orderInStatus(t, order.Ready)
	cmd, err := commands.NewRefundOrderCommand(aggregate.ID(), "manager", "cold food")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundOrderCommandHandler(factory, orderlock.NewLocker())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Ready, aggregate.Status())
	assert.Nil(t, aggregate.RefundedBy())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRefundOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RefundOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewRefundOrderCommandHandler(factory, orderlock.NewLocker())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRefundOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewRefundOrderCommand(id, "manager", "cold food")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("orderId", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefundOrderCommandHandler(factory, orderlock.NewLocker())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

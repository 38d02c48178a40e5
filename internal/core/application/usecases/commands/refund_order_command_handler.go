package commands

import (
	"context"
	"time"

	"waiter/internal/pkg/orderlock"
)

// RefundOrderCommandHandler refunds a paid order, recording who refunded it,
// why, and when on the aggregate.
type RefundOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.Locker
}

// NewRefundOrderCommandHandler creates a handler for refund operations.
func NewRefundOrderCommandHandler(uowFactory OrderUoWFactory, locks *orderlock.Locker) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle loads the order, applies the guarded refund transition, and saves.
// Non-PAID orders are rejected with an invalid-state error and the refund
// fields stay untouched.
func (h RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	defer h.locks.Lock(cmd.OrderID().String())()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Refund(cmd.Actor(), cmd.Reason(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"waiter/internal/pkg/orderlock"
)

// PayOrderCommandHandler settles an order. Before payment the lines are
// repriced from the live menu so the frozen total reflects current prices,
// matching how totals are recomputed on every ledger mutation.
type PayOrderCommandHandler struct {
	uowFactory UoWFactory
	locks      *orderlock.Locker
}

// NewPayOrderCommandHandler creates a handler for payment operations.
// Requires a UoWFactory because repricing reads the menu catalog.
func NewPayOrderCommandHandler(uowFactory UoWFactory, locks *orderlock.Locker) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle loads the order, reprices its lines, applies the guarded pay
// transition, and saves. A non-READY order fails with an invalid-state error
// and nothing is persisted.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	if err = aggregate.RecalculateTotal(menuPriceOf(ctx, uow.MenuItemRepository())); err != nil {
		return err
	}

	if err = aggregate.Pay(cmd.Method()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

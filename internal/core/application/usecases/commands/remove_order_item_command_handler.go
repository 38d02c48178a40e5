package commands

import (
	"context"

	"waiter/internal/pkg/orderlock"
)

// RemoveOrderItemCommandHandler removes menu item quantity from an order's
// ledger and reprices the remaining lines.
type RemoveOrderItemCommandHandler struct {
	uowFactory UoWFactory
	locks      *orderlock.Locker
}

// NewRemoveOrderItemCommandHandler creates a handler for item removal operations.
func NewRemoveOrderItemCommandHandler(uowFactory UoWFactory, locks *orderlock.Locker) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle loads the order, removes the quantity from the matching line,
// reprices the remaining lines, and saves. An order without a line for the
// menu item fails with a not-found error.
func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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

	if err = aggregate.RemoveLine(cmd.MenuItemID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = aggregate.RecalculateTotal(menuPriceOf(ctx, uow.MenuItemRepository())); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/orderlock"
)

// AddOrderItemCommandHandler adds menu item quantity to an order. The menu
// item is resolved from the catalog so the line is created with the current
// name and price, then all lines are repriced.
type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
	locks      *orderlock.Locker
}

// NewAddOrderItemCommandHandler creates a handler for item addition operations.
func NewAddOrderItemCommandHandler(uowFactory UoWFactory, locks *orderlock.Locker) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle loads the order and the menu item, adds the quantity to the order's
// ledger, reprices the remaining lines, and saves. Paid and refunded orders
// reject the mutation and nothing is persisted.
func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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
	menuRepo := uow.MenuItemRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if err = aggregate.AddLine(kernel.NewUUID(), item, cmd.Quantity(), cmd.Comment()); err != nil {
		return err
	}

	if err = aggregate.RecalculateTotal(menuPriceOf(ctx, menuRepo)); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"waiter/internal/pkg/orderlock"
)

// ChangeOrderStatusCommandHandler applies the unguarded status change as one
// load-mutate-save unit of work.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.Locker
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory, locks *orderlock.Locker,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
	}
}

// Handle loads the order, sets the requested status, and saves.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = aggregate.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

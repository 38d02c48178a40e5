package commands

import (
	"context"
	"log/slog"

	"waiter/internal/pkg/orderlock"
)

// DeleteOrderCommandHandler deletes an order in any status. The order is
// loaded first so a missing id fails with a not-found error and the status
// at deletion time can be logged.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.Locker
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for deletion operations.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory, locks *orderlock.Locker, logger *slog.Logger,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		logger:     logger.With("component", "delete_order_handler"),
	}
}

// Handle loads the order, deletes it, and logs the status it had.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err = orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order deleted",
		"order_id", cmd.OrderID().String(),
		"status", aggregate.Status().String(),
	)
	return nil
}

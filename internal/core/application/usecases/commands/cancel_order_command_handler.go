package commands

import (
	"context"
	"log/slog"

	"waiter/internal/pkg/orderlock"
)

// CancelOrderCommandHandler cancels an order via the guarded cancel
// transition. The requesting actor is logged for audit purposes.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locks      *orderlock.Locker
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory, locks *orderlock.Locker, logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		logger:     logger.With("component", "cancel_order_handler"),
	}
}

// Handle loads the order, applies the guarded cancel transition, and saves.
// Paid and refunded orders are rejected with an invalid-state error.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order cancelled",
		"order_id", cmd.OrderID().String(),
		"actor", cmd.Actor(),
	)
	return nil
}

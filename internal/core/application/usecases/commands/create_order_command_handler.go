package commands

import (
	"context"
	"time"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for opening orders.
// Resolves every requested menu item before the first repository write, so a
// missing menu item means nothing is persisted at all.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because creation reads the menu catalog.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Builds the aggregate in memory (resolving menu items for pricing), then
// persists it once with the final computed total.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuItemRepository()

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Waiter(), time.Now())
	if err != nil {
		return err
	}

	for _, line := range cmd.Lines() {
		item, itemErr := menuRepo.Get(ctx, line.MenuItemID)
		if itemErr != nil {
			return itemErr
		}
		if err = newOrder.AddLine(kernel.NewUUID(), item, line.Quantity, line.Comment); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"errors"
	"fmt"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"
	"waiter/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand represents a request to remove quantity of a menu
// item from an order. Removing at least the line's full quantity deletes the
// line entirely.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command to remove an item from an order.
// Validates both ids and that quantity >= 1.
func NewRemoveOrderItemCommand(
	orderID, menuItemID kernel.UUID, quantity int,
) (RemoveOrderItemCommand, error) {
	itemCommand := RemoveOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setMenuItemID(menuItemID),
		itemCommand.setQuantity(quantity),
	); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to shrink.
func (c RemoveOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MenuItemID returns the identifier of the menu item to remove.
func (c RemoveOrderItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns how many units to remove.
func (c RemoveOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *RemoveOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *RemoveOrderItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}

	c.quantity = quantity
	return nil
}

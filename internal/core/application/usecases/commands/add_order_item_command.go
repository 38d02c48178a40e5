package commands

import (
	"errors"
	"fmt"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"
	"waiter/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to add quantity of a menu item to
// an existing order. If the order already has a line for that menu item the
// quantity is incremented rather than a second line created.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	comment    string

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an item to an order.
// Validates both ids and that quantity >= 1.
func NewAddOrderItemCommand(
	orderID, menuItemID kernel.UUID, quantity int, comment string,
) (AddOrderItemCommand, error) {
	itemCommand := AddOrderItemCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setMenuItemID(menuItemID),
		itemCommand.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MenuItemID returns the identifier of the menu item to add.
func (c AddOrderItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Quantity returns how many units to add.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

// Comment returns the free-text comment for the kitchen.
func (c AddOrderItemCommand) Comment() string {
	return c.comment
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}

	c.quantity = quantity
	return nil
}

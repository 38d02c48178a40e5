package commands

import (
	"errors"
	"fmt"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"
	"waiter/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrWaiterIsRequired = errors.New("waiter is required")
)

// OrderLineInput describes one requested line of a new order: which menu
// item, how many, and an optional comment for the kitchen.
type OrderLineInput struct {
	MenuItemID kernel.UUID
	Quantity   int
	Comment    string
}

// CreateOrderCommand represents a request to open a new table-service order
// with an initial set of lines. Creation is all-or-nothing: if any referenced
// menu item cannot be resolved, no order is persisted.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "alice", []OrderLineInput{
//	    {MenuItemID: pizzaID, Quantity: 2, Comment: "no basil"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	waiter  string
	lines   []OrderLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates the order id, the waiter name, and every requested line
// (valid menu item id, quantity >= 1).
func NewCreateOrderCommand(orderID kernel.UUID, waiter string, lines []OrderLineInput) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setWaiter(waiter),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Waiter returns the username of the waiter opening the order.
func (c CreateOrderCommand) Waiter() string {
	return c.waiter
}

// Lines returns the requested initial lines.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setWaiter(waiter string) error {
	if waiter == "" {
		return ErrWaiterIsRequired
	}

	c.waiter = waiter
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	for i, line := range lines {
		if err := line.MenuItemID.Validate(); err != nil {
			return err
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("line %d: %d is less than 1", i, line.Quantity),
			)
		}
	}

	c.lines = lines
	return nil
}

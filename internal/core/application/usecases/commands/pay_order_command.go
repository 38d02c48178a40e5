package commands

import (
	"errors"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a request to settle a READY order with the
// given payment method. Payment freezes the order total.
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	method  order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay an order.
// Validates the order id and that a payment method was given.
func NewPayOrderCommand(orderID kernel.UUID, method order.PaymentMethod) (PayOrderCommand, error) {
	payCommand := PayOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payCommand.setOrderID(orderID),
		payCommand.setMethod(method),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return payCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pay.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the payment method.
func (c PayOrderCommand) Method() order.PaymentMethod {
	return c.method
}

func (c *PayOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PayOrderCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

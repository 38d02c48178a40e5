package commands

import (
	"errors"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/guard"
)

var (
	ErrRefundOrderCommandIsNotConstructed = errors.New(
		"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
	)
	ErrReasonIsRequired = errors.New("reason is required")
)

// RefundOrderCommand represents a request to refund a PAID order. The actor
// and reason are persisted on the order as refund audit metadata.
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string
	reason  string

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a command to refund an order.
// Both the actor and the reason are required.
func NewRefundOrderCommand(orderID kernel.UUID, actor, reason string) (RefundOrderCommand, error) {
	refundCommand := RefundOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		refundCommand.setOrderID(orderID),
		refundCommand.setActor(actor),
		refundCommand.setReason(reason),
	); err != nil {
		return RefundOrderCommand{}, err
	}

	return refundCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to refund.
func (c RefundOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns who issues the refund.
func (c RefundOrderCommand) Actor() string {
	return c.actor
}

// Reason returns why the order is refunded.
func (c RefundOrderCommand) Reason() string {
	return c.reason
}

func (c *RefundOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RefundOrderCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}

func (c *RefundOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}

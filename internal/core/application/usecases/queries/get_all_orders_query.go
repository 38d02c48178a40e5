// Package queries contains read-only operations implementing the query side
// of the CQRS architecture. Query handlers read projections straight from the
// database, bypassing the domain aggregates.
package queries

import (
	"errors"
	"time"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order with its lines, oldest first.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s (%s): %.2f\n", o.ID, o.Status, o.Total)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderResponse is the read projection of one order, shared by the list and
// by-id queries. Status and payment method are rendered as their canonical
// string values.
type OrderResponse struct {
	ID            kernel.UUID
	CreatedAt     time.Time
	Status        string
	Waiter        string
	PaymentMethod *string
	Total         float64
	RefundedBy    *string
	RefundReason  *string
	RefundedAt    *time.Time
	Lines         []OrderLineResponse
}

// OrderLineResponse is the read projection of one order line.
type OrderLineResponse struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  float64
	Quantity   int
	Comment    string
	Subtotal   float64
}

// Package ports defines repository interfaces for the order core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are always stored and loaded as a whole, lines included.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// replacing its line set with the aggregate's current lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all orders, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes the order and its lines.
	// Returns an ObjectNotFoundError if no such order exists.
	Delete(ctx context.Context, id kernel.UUID) error
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuRepoFactory provides access to the menu catalog within a transaction.
	MenuRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that never consult the menu catalog.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions spanning the order aggregate and the menu
	// catalog. Used by commands that resolve menu items or reprice lines.
	UoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
	}

	// UoWFactory creates new unit of work instances for catalog-touching operations.
	UoWFactory interface {
		Create() UoW
	}
)

// menuPriceOf adapts a menu repository into the price resolver the Order
// aggregate uses to reprice its lines at mutation time.
func menuPriceOf(ctx context.Context, repo ports.MenuItemRepository) func(kernel.UUID) (float64, error) {
	return func(menuItemID kernel.UUID) (float64, error) {
		item, err := repo.Get(ctx, menuItemID)
		if err != nil {
			return 0, err
		}
		return item.Price(), nil
	}
}

package ports

import (
	"context"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/menu"
)

// MenuItemRepository is the read-only menu catalog the order core consumes.
// Catalog management lives outside this core; the order side only resolves
// item ids to names and current prices.
type MenuItemRepository interface {
	// Get retrieves a menu item by its unique identifier.
	// Returns an ObjectNotFoundError if no such item exists.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAll retrieves the whole catalog.
	GetAll(ctx context.Context) ([]*menu.MenuItem, error)
}

package queries

import (
	"errors"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the menu catalog, sorted by item name.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve the menu catalog.
// This is a parameterless query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuItemResponse is the read projection of one menu item.
type MenuItemResponse struct {
	ID        kernel.UUID
	Name      string
	Price     float64
	Available bool
}

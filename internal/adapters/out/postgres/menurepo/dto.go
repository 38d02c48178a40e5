// Package menurepo persists the menu catalog. The order core treats the
// catalog as read-only; Add exists for seeding and tests.
package menurepo

import (
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for persisting menu items.
type MenuItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Price     float64
	Available bool
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item entity to its database representation.
func fromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:        item.ID().Bytes(),
		Name:      item.Name(),
		Price:     item.Price(),
		Available: item.Available(),
	}
}

// toDomain converts a database DTO to a menu item entity.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, dto.Name, dto.Price, dto.Available)
}

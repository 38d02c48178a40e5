package menu

import (
	"errors"
	"fmt"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"
	"waiter/internal/pkg/guard"
)

// Domain errors for menu item operations.
var (
	// ErrNameIsRequired is returned when attempting to create a menu item without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrMenuItemIsNotConstructed is returned when using an improperly initialized MenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem represents a dish or drink on the menu. Orders reference menu items
// by id; the price on the catalog is the source of truth for line pricing
// until an order's total is frozen by payment.
//
// Business rules:
//   - Must have a valid UUID and a non-empty name
//   - Price must be zero or positive
//   - Availability only affects what the kitchen offers, not existing orders
type MenuItem struct {
	id        kernel.UUID
	name      string
	price     float64
	available bool

	guard guard.ConstructorGuard
}

// NewMenuItem creates a MenuItem with the specified parameters.
// All validation errors are aggregated via errors.Join.
func NewMenuItem(id kernel.UUID, name string, price float64, available bool) (*MenuItem, error) {
	item := &MenuItem{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistent storage.
// Applies the same validation as NewMenuItem.
func RestoreMenuItem(id kernel.UUID, name string, price float64, available bool) (*MenuItem, error) {
	return NewMenuItem(id, name, price, available)
}

// Validate ensures the MenuItem instance was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// IsEqual compares two menu items by their unique identifiers.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the menu item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the current unit price.
func (m *MenuItem) Price() float64 {
	return m.price
}

// Available reports whether the item is currently offered.
func (m *MenuItem) Available() bool {
	return m.available
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}
	m.price = price
	return nil
}

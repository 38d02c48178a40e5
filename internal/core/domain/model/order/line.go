package order

import (
	"errors"
	"fmt"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/menu"
	"waiter/internal/pkg/errs"
)

// maxCommentLength bounds the free-text comment on a line item.
const maxCommentLength = 255

// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
var ErrLineIsNotConstructed = errors.New("Line must be created via the Order aggregate or RestoreLine")

// Line is one line item of an order: a menu item reference with a
// denormalized name, the unit price read at the last recomputation, a
// quantity, and an optional comment for the kitchen.
//
// Lines are owned exclusively by their Order. All mutation goes through the
// aggregate; quantity never drops below 1, a line that would reach zero is
// removed from the order instead.
type Line struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	name       string
	unitPrice  float64
	quantity   int
	comment    string

	isConstructed bool
}

// newLine creates a line for the given menu item. Only the Order aggregate
// creates fresh lines.
func newLine(id kernel.UUID, item *menu.MenuItem, quantity int, comment string) (*Line, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	line := &Line{
		menuItemID:    item.ID(),
		name:          item.Name(),
		unitPrice:     item.Price(),
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setQuantity(quantity),
		line.setComment(comment),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a Line from persistent storage.
func RestoreLine(
	id kernel.UUID,
	menuItemID kernel.UUID,
	name string,
	unitPrice float64,
	quantity int,
	comment string,
) (*Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if unitPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%v is negative", unitPrice))
	}

	line := &Line{
		menuItemID:    menuItemID,
		name:          name,
		unitPrice:     unitPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setQuantity(quantity),
		line.setComment(comment),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the Line instance was properly constructed.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// MenuItemID returns the id of the referenced menu item.
func (l *Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Name returns the denormalized menu item name.
func (l *Line) Name() string {
	return l.name
}

// UnitPrice returns the unit price as of the last recomputation.
func (l *Line) UnitPrice() float64 {
	return l.unitPrice
}

// Quantity returns the line quantity, always >= 1.
func (l *Line) Quantity() int {
	return l.quantity
}

// Comment returns the free-text comment for the kitchen.
func (l *Line) Comment() string {
	return l.comment
}

// Subtotal returns quantity * unit price.
func (l *Line) Subtotal() float64 {
	return float64(l.quantity) * l.unitPrice
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setComment(comment string) error {
	if len(comment) > maxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment length", len(comment), 0, maxCommentLength)
	}
	l.comment = comment
	return nil
}

// addQuantity increments the line quantity by delta (delta >= 1, checked by
// the aggregate).
func (l *Line) addQuantity(delta int) {
	l.quantity += delta
}

// removeQuantity decrements the line quantity by delta and reports whether
// the line is exhausted and must be removed from the order.
func (l *Line) removeQuantity(delta int) bool {
	if delta >= l.quantity {
		return true
	}
	l.quantity -= delta
	return false
}

// refreshPrice updates the unit price to the current menu price.
func (l *Line) refreshPrice(price float64) {
	l.unitPrice = price
}

// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows. An order
// and its lines are always written and read together.
package orderrepo

import (
	"time"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines live in their own table and are keyed by the order id.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt     time.Time
	Status        int `gorm:"index"`
	Waiter        string
	PaymentMethod *int
	TotalAmount   float64
	RefundedBy    *string
	RefundReason  *string
	RefundedAt    *time.Time
	Lines         []LineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one order line row.
type LineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	UnitPrice  float64
	Quantity   int
	Comment    string
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database
// representation, lines included.
func fromDomain(aggregate *order.Order) OrderDTO {
	var paymentMethod *int
	if m := aggregate.PaymentMethod(); m != nil {
		raw := int(*m)
		paymentMethod = &raw
	}

	lines := aggregate.Lines()
	lineDTOs := make([]LineDTO, 0, len(lines))
	for _, line := range lines {
		lineDTOs = append(lineDTOs, LineDTO{
			ID:         line.ID().Bytes(),
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: line.MenuItemID().Bytes(),
			Name:       line.Name(),
			UnitPrice:  line.UnitPrice(),
			Quantity:   line.Quantity(),
			Comment:    line.Comment(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CreatedAt:     aggregate.CreatedAt(),
		Status:        int(aggregate.Status()),
		Waiter:        aggregate.Waiter(),
		PaymentMethod: paymentMethod,
		TotalAmount:   aggregate.Total(),
		RefundedBy:    aggregate.RefundedBy(),
		RefundReason:  aggregate.RefundReason(),
		RefundedAt:    aggregate.RefundedAt(),
		Lines:         lineDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate, lines included, using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var paymentMethod *order.PaymentMethod
	if dto.PaymentMethod != nil {
		method := order.PaymentMethod(*dto.PaymentMethod)
		paymentMethod = &method
	}

	return order.RestoreOrder(
		id,
		dto.CreatedAt,
		order.Status(dto.Status),
		dto.Waiter,
		lines,
		paymentMethod,
		dto.TotalAmount,
		dto.RefundedBy,
		dto.RefundReason,
		dto.RefundedAt,
	)
}

// lineToDomain converts a line row to its domain representation.
func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, menuItemID, dto.Name, dto.UnitPrice, dto.Quantity, dto.Comment)
}

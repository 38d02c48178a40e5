package http

import (
	"time"

	"waiter/internal/core/application/usecases/queries"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one requested line of a new or extended order.
type NewOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Comment    string `json:"comment,omitempty"`
}

// NewOrder is the request body for creating an order.
type NewOrder struct {
	Waiter string         `json:"waiter"`
	Items  []NewOrderItem `json:"items"`
}

// OrderCreated is the response body for a successfully created order.
type OrderCreated struct {
	ID string `json:"id"`
}

// ChangeStatus is the request body for the kitchen status progression.
type ChangeStatus struct {
	Status string `json:"status"`
}

// PayOrder is the request body for settling an order.
type PayOrder struct {
	Method string `json:"method"`
}

// CancelOrder is the request body for cancelling an order.
type CancelOrder struct {
	Actor string `json:"actor"`
}

// RefundOrder is the request body for refunding a paid order.
type RefundOrder struct {
	Actor  string `json:"actor"`
	Reason string `json:"reason"`
}

// RemoveOrderItem is the request body for removing quantity of a menu item.
type RemoveOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// Order is the response representation of one order.
type Order struct {
	ID            string      `json:"id"`
	CreatedAt     time.Time   `json:"createdAt"`
	Status        string      `json:"status"`
	Waiter        string      `json:"waiter"`
	PaymentMethod *string     `json:"paymentMethod,omitempty"`
	Total         float64     `json:"total"`
	RefundedBy    *string     `json:"refundedBy,omitempty"`
	RefundReason  *string     `json:"refundReason,omitempty"`
	RefundedAt    *time.Time  `json:"refundedAt,omitempty"`
	Lines         []OrderLine `json:"lines"`
}

// OrderLine is the response representation of one order line.
type OrderLine struct {
	ID         string  `json:"id"`
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	Comment    string  `json:"comment,omitempty"`
	Subtotal   float64 `json:"subtotal"`
}

// MenuItem is the response representation of one menu catalog entry.
type MenuItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
}

// orderFromResponse maps a query projection to its wire representation.
func orderFromResponse(resp queries.OrderResponse) Order {
	lines := make([]OrderLine, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		lines = append(lines, OrderLine{
			ID:         line.ID.String(),
			MenuItemID: line.MenuItemID.String(),
			Name:       line.Name,
			UnitPrice:  line.UnitPrice,
			Quantity:   line.Quantity,
			Comment:    line.Comment,
			Subtotal:   line.Subtotal,
		})
	}

	return Order{
		ID:            resp.ID.String(),
		CreatedAt:     resp.CreatedAt,
		Status:        resp.Status,
		Waiter:        resp.Waiter,
		PaymentMethod: resp.PaymentMethod,
		Total:         resp.Total,
		RefundedBy:    resp.RefundedBy,
		RefundReason:  resp.RefundReason,
		RefundedAt:    resp.RefundedAt,
		Lines:         lines,
	}
}

package queries

import (
	"context"
	"database/sql"
	"time"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders and their lines from the
// database, oldest order first.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are sorted by creation time and every
// order carries its full line set.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, index, err := h.fetchOrders(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.attachLines(ctx, orders, index); err != nil {
		return nil, err
	}

	return orders, nil
}

// fetchOrders loads the order rows and returns them together with an index
// from order id to position, used to attach lines afterwards.
func (h GetAllOrdersQueryHandler) fetchOrders(ctx context.Context) ([]OrderResponse, map[uuid.UUID]int, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_at,
			status,
			waiter,
			payment_method,
			total_amount,
			refunded_by,
			refund_reason,
			refunded_at
		FROM orders
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var (
			id            uuid.UUID
			createdAt     time.Time
			status        int
			waiter        string
			paymentMethod sql.NullInt64
			totalAmount   float64
			refundedBy    sql.NullString
			refundReason  sql.NullString
			refundedAt    sql.NullTime
		)

		err = rows.Scan(
			&id,
			&createdAt,
			&status,
			&waiter,
			&paymentMethod,
			&totalAmount,
			&refundedBy,
			&refundReason,
			&refundedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		resp, respErr := buildOrderResponse(
			id, createdAt, status, waiter, paymentMethod, totalAmount,
			refundedBy, refundReason, refundedAt,
		)
		if respErr != nil {
			return nil, nil, respErr
		}

		index[id] = len(orders)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return orders, index, nil
}

// attachLines loads every order line and appends it to its parent order.
func (h GetAllOrdersQueryHandler) attachLines(
	ctx context.Context, orders []OrderResponse, index map[uuid.UUID]int,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			menu_item_id,
			name,
			unit_price,
			quantity,
			comment
		FROM order_lines
		ORDER BY order_id, id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		line, scanErr := scanLine(rows, &orderID)
		if scanErr != nil {
			return scanErr
		}

		pos, ok := index[orderID]
		if !ok {
			continue
		}
		orders[pos].Lines = append(orders[pos].Lines, line)
	}

	return rows.Err()
}

// buildOrderResponse maps one scanned order row to its response projection.
func buildOrderResponse(
	id uuid.UUID,
	createdAt time.Time,
	status int,
	waiter string,
	paymentMethod sql.NullInt64,
	totalAmount float64,
	refundedBy sql.NullString,
	refundReason sql.NullString,
	refundedAt sql.NullTime,
) (OrderResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:        orderID,
		CreatedAt: createdAt,
		Status:    order.Status(status).String(),
		Waiter:    waiter,
		Total:     totalAmount,
		Lines:     make([]OrderLineResponse, 0),
	}

	if paymentMethod.Valid {
		method := order.PaymentMethod(paymentMethod.Int64).String()
		resp.PaymentMethod = &method
	}
	if refundedBy.Valid {
		resp.RefundedBy = &refundedBy.String
	}
	if refundReason.Valid {
		resp.RefundReason = &refundReason.String
	}
	if refundedAt.Valid {
		resp.RefundedAt = &refundedAt.Time
	}

	return resp, nil
}

// scanLine maps one scanned order line row to its response projection,
// writing the parent order id through orderID.
func scanLine(rows *sql.Rows, orderID *uuid.UUID) (OrderLineResponse, error) {
	var (
		id         uuid.UUID
		menuItemID uuid.UUID
		name       string
		unitPrice  float64
		quantity   int
		comment    string
	)

	err := rows.Scan(&id, orderID, &menuItemID, &name, &unitPrice, &quantity, &comment)
	if err != nil {
		return OrderLineResponse{}, err
	}

	lineID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderLineResponse{}, err
	}
	itemID, err := kernel.UUIDFromBytes(menuItemID[:])
	if err != nil {
		return OrderLineResponse{}, err
	}

	return OrderLineResponse{
		ID:         lineID,
		MenuItemID: itemID,
		Name:       name,
		UnitPrice:  unitPrice,
		Quantity:   quantity,
		Comment:    comment,
		Subtotal:   unitPrice * float64(quantity),
	}, nil
}

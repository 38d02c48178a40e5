package queries

import (
	"context"
	"database/sql"
	"time"

	"waiter/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves a single order and its lines from the
// database.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError if no order with
// the given id exists.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	resp, err := h.fetchOrder(ctx, query)
	if err != nil {
		return OrderResponse{}, err
	}

	lines, err := h.fetchLines(ctx, query)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Lines = lines

	return resp, nil
}

func (h GetOrderByIDQueryHandler) fetchOrder(
	ctx context.Context, query GetOrderByIDQuery,
) (OrderResponse, error) {
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
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

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
		return OrderResponse{}, err
	}

	return buildOrderResponse(
		id, createdAt, status, waiter, paymentMethod, totalAmount,
		refundedBy, refundReason, refundedAt,
	)
}

func (h GetOrderByIDQueryHandler) fetchLines(
	ctx context.Context, query GetOrderByIDQuery,
) ([]OrderLineResponse, error) {
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
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var orderID uuid.UUID
		line, scanErr := scanLine(rows, &orderID)
		if scanErr != nil {
			return nil, scanErr
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

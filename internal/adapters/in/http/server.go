// Package http is the inbound web boundary. Handlers are thin: they parse
// the request, build a command or query, delegate to the application layer,
// and map the error class to a status code. No business rules live here.
package http

import (
	"errors"
	"net/http"

	"waiter/internal/core/application/usecases/commands"
	"waiter/internal/core/application/usecases/queries"
	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/core/domain/model/order"
	"waiter/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	payOrderHandler          commands.PayOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	refundOrderHandler       commands.RefundOrderCommandHandler
	addOrderItemHandler      commands.AddOrderItemCommandHandler
	removeOrderItemHandler   commands.RemoveOrderItemCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getAllOrdersHandler  queries.GetAllOrdersQueryHandler
	getOrderByIDHandler  queries.GetOrderByIDQueryHandler
	getMenuQueryHandler  queries.GetMenuQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	refundOrderHandler commands.RefundOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getMenuQueryHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		payOrderHandler:          payOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		refundOrderHandler:       refundOrderHandler,
		addOrderItemHandler:      addOrderItemHandler,
		removeOrderItemHandler:   removeOrderItemHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getMenuQueryHandler:      getMenuQueryHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/orders", s.GetOrders)
	e.POST("/api/orders", s.CreateOrder)
	e.GET("/api/orders/:id", s.GetOrder)
	e.DELETE("/api/orders/:id", s.DeleteOrder)
	e.PUT("/api/orders/:id/status", s.ChangeOrderStatus)
	e.PUT("/api/orders/:id/pay", s.PayOrder)
	e.PUT("/api/orders/:id/cancel", s.CancelOrder)
	e.PUT("/api/orders/:id/refund", s.RefundOrder)
	e.POST("/api/orders/:id/add-item", s.AddOrderItem)
	e.POST("/api/orders/:id/remove-item", s.RemoveOrderItem)
	e.GET("/api/menu", s.GetMenu)
}

// GetOrders handles GET /api/orders - retrieves all orders with their lines.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]Order, 0, len(orders))
	for _, resp := range orders {
		response = append(response, orderFromResponse(resp))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(resp))
}

// CreateOrder handles POST /api/orders - opens a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLineInput, 0, len(body.Items))
	for _, item := range body.Items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return badRequest(ctx, "Invalid menu item id")
		}
		lines = append(lines, commands.OrderLineInput{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
			Comment:    item.Comment,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.Waiter, lines)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// ChangeOrderStatus handles PUT /api/orders/:id/status - kitchen progression.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body ChangeStatus
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayOrder handles PUT /api/orders/:id/pay - settles a READY order.
func (s *Server) PayOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body PayOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	method, err := order.PaymentMethodFromString(body.Method)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewPayOrderCommand(orderID, method)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles PUT /api/orders/:id/cancel - cancels an unpaid order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body CancelOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Actor)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundOrder handles PUT /api/orders/:id/refund - refunds a PAID order.
func (s *Server) RefundOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body RefundOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRefundOrderCommand(orderID, body.Actor, body.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.refundOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/orders/:id/add-item - adds item quantity.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body NewOrderItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(body.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, menuItemID, body.Quantity, body.Comment)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles POST /api/orders/:id/remove-item - removes item quantity.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var body RemoveOrderItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(body.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item id")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, menuItemID, body.Quantity)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/orders/:id - deletes an order outright.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMenu handles GET /api/menu - retrieves the menu catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuQueryHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]MenuItem, 0, len(items))
	for _, item := range items {
		response = append(response, MenuItem{
			ID:        item.ID.String(),
			Name:      item.Name,
			Price:     item.Price,
			Available: item.Available,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// errorJSON maps an application error to its status code: missing objects to
// 404, invalid input to 400, lifecycle guard violations to 409, everything
// else to 500.
func errorJSON(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

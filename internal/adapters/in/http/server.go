// Package http exposes the order use cases over a REST API.
package http

import (
	"errors"
	"net/http"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	addItemHandler     commands.AddOrderItemCommandHandler
	removeItemHandler  commands.RemoveOrderItemCommandHandler
	shipOrderHandler   commands.ShipOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler
	splitOrderHandler  commands.SplitOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddOrderItemCommandHandler,
	removeItemHandler commands.RemoveOrderItemCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	splitOrderHandler commands.SplitOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		addItemHandler:         addItemHandler,
		removeItemHandler:      removeItemHandler,
		shipOrderHandler:       shipOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		splitOrderHandler:      splitOrderHandler,
		getOrderHandler:        getOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches every order endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/items", s.AddItem)
	api.DELETE("/orders/:orderId/items/:itemId", s.RemoveItem)
	api.POST("/orders/:orderId/ship", s.ShipOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/split", s.SplitOrder)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	userID, err := kernel.UUIDFromBytes(request.UserID[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid user id")
	}
	addressID, err := kernel.UUIDFromBytes(request.AddressID[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid address id")
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, userID, addressID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.Bytes()})
}

// AddItem handles POST /api/v1/orders/{orderId}/items - adds a line to a pending order.
func (s *Server) AddItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request AddItemRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(request.ProductID[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid product id")
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, request.Quantity)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.addItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveItem(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}
	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid item id")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.removeItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/{orderId}/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request CancelOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, request.Reason)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SplitOrder handles POST /api/v1/orders/{orderId}/split - carves selected
// units out of an order into a new order.
func (s *Server) SplitOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request SplitOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	selections := make([]commands.ItemSelection, 0, len(request.Items))
	for _, item := range request.Items {
		itemID, idErr := kernel.UUIDFromBytes(item.ItemID[:])
		if idErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid item id")
		}
		selection, selErr := commands.NewItemSelection(itemID, item.Quantity)
		if selErr != nil {
			return domainErrorResponse(ctx, selErr)
		}
		selections = append(selections, selection)
	}

	var newAddressID *kernel.UUID
	if request.NewAddressID != nil {
		addressID, idErr := kernel.UUIDFromBytes(request.NewAddressID[:])
		if idErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid address id")
		}
		newAddressID = &addressID
	}

	cmd, err := commands.NewSplitOrderCommand(orderID, selections, request.Reason, newAddressID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	result, err := s.splitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SplitOrderResponse{
		OriginalOrderID: result.OriginalOrderID.Bytes(),
		SplitOrderID:    result.SplitOrderID.Bytes(),
		SplitID:         result.SplitID.Bytes(),
		OriginalTotal:   result.OriginalTotal.Amount(),
		SplitTotal:      result.SplitTotal.Amount(),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	items := make([]OrderItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItem{
			ID:        item.ID.Bytes(),
			ProductID: item.ProductID.Bytes(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}

	response := Order{
		ID:            result.ID.Bytes(),
		OrderNumber:   result.OrderNumber,
		Status:        result.Status,
		PaymentStatus: result.PaymentStatus,
		SubTotal:      result.SubTotal,
		ShippingCost:  result.ShippingCost,
		Tax:           result.Tax,
		TotalAmount:   result.TotalAmount,
		Items:         items,
	}
	if result.ParentOrderID != nil {
		parentID := result.ParentOrderID.Bytes()
		response.ParentOrderID = &parentID
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all in-flight orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrder{
			ID:          o.ID.Bytes(),
			OrderNumber: o.OrderNumber,
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// domainErrorResponse maps the error taxonomy of the core onto HTTP statuses.
func domainErrorResponse(ctx echo.Context, err error) error {
	return errorResponse(ctx, statusFromError(err), err.Error())
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrDomainRuleViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

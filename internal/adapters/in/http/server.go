// Package http exposes the order, kitchen and menu use cases over a REST
// surface. Handlers translate transport concerns (identity headers, JSON
// bodies, status codes) and delegate every decision to the application
// layer; no business rule lives here.
package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/core/application/usecases/queries"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	updateStatusHandler  commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	createKitchenHandler commands.CreateKitchenCommandHandler
	upsertDishHandler    commands.UpsertDishCommandHandler
	removeDishHandler    commands.RemoveDishCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	listOrdersHandler   queries.ListOrdersQueryHandler
	listKitchensHandler queries.ListKitchensQueryHandler
	getMenuHandler      queries.GetMenuQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createKitchenHandler commands.CreateKitchenCommandHandler,
	upsertDishHandler commands.UpsertDishCommandHandler,
	removeDishHandler commands.RemoveDishCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listKitchensHandler queries.ListKitchensQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		updateStatusHandler:  updateStatusHandler,
		cancelOrderHandler:   cancelOrderHandler,
		createKitchenHandler: createKitchenHandler,
		upsertDishHandler:    upsertDishHandler,
		removeDishHandler:    removeDishHandler,
		getOrderHandler:      getOrderHandler,
		listOrdersHandler:    listOrdersHandler,
		listKitchensHandler:  listKitchensHandler,
		getMenuHandler:       getMenuHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.DELETE("/orders/:orderId", s.CancelOrder)

	api.POST("/kitchens", s.CreateKitchen)
	api.GET("/kitchens", s.ListKitchens)

	api.GET("/menu", s.GetMenu)
	api.PUT("/menu/dishes", s.UpsertDish)
	api.DELETE("/menu/dishes/:dishId", s.RemoveDish)

	e.GET("/health", s.Health)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]order.Item, len(body.Items))
	for i, item := range body.Items {
		items[i] = order.Item{DishRef: item.DishRef, Quantity: item.Quantity}
	}

	cmd, err := commands.NewCreateOrderCommand(caller, items, body.Total)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(result.Order, result.PublishWarning))
}

// GetOrder handles GET /api/v1/orders/{orderId} - reads a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(caller, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(view))
}

// ListOrders handles GET /api/v1/orders - lists orders page by page.
// Query parameters: limit, cursor, status.
func (s *Server) ListOrders(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	limit, err := limitParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &parsed
	}

	query, err := queries.NewListOrdersQuery(caller, limit, ctx.QueryParam("cursor"), statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := OrderPage{
		Orders:     make([]Order, len(page.Orders)),
		NextCursor: page.NextCursor,
	}
	for i, view := range page.Orders {
		response.Orders[i] = toOrderView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status -
// advances the order workflow.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var body StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	desired, err := order.StatusFromString(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(caller, orderID, desired)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result.Order, result.PublishWarning))
}

// CancelOrder handles DELETE /api/v1/orders/{orderId} - cancels an order
// that has not started cooking.
func (s *Server) CancelOrder(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.OrderIDFromString(ctx.Param("orderId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(caller, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result.Order, result.PublishWarning))
}

// CreateKitchen handles POST /api/v1/kitchens - provisions a kitchen.
func (s *Server) CreateKitchen(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body NewKitchen
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateKitchenCommand(caller, body.Name, body.MaxCooking)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createKitchenHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toKitchenResponse(created))
}

// ListKitchens handles GET /api/v1/kitchens - lists kitchens page by page.
func (s *Server) ListKitchens(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	limit, err := limitParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewListKitchensQuery(caller, limit, ctx.QueryParam("cursor"))
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.listKitchensHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := KitchenPage{
		Kitchens:   make([]Kitchen, len(page.Kitchens)),
		NextCursor: page.NextCursor,
	}
	for i, view := range page.Kitchens {
		response.Kitchens[i] = toKitchenView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenu handles GET /api/v1/menu - lists the dish catalog page by page.
func (s *Server) GetMenu(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	limit, err := limitParam(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetMenuQuery(caller, limit, ctx.QueryParam("cursor"))
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := MenuPage{
		Dishes:     make([]Dish, len(page.Dishes)),
		NextCursor: page.NextCursor,
	}
	for i, view := range page.Dishes {
		response.Dishes[i] = toDishView(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpsertDish handles PUT /api/v1/menu/dishes - creates or replaces a dish.
func (s *Server) UpsertDish(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var body UpsertDish
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var dishID *kernel.DishID
	if body.ID != "" {
		parsed, err := kernel.DishIDFromString(body.ID)
		if err != nil {
			return respondError(ctx, err)
		}
		dishID = &parsed
	}

	cmd, err := commands.NewUpsertDishCommand(caller, dishID,
		body.Name, body.Description, body.Price, body.Available, body.ImageURL)
	if err != nil {
		return respondError(ctx, err)
	}

	dish, err := s.upsertDishHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	code := http.StatusOK
	if dishID == nil {
		code = http.StatusCreated
	}
	return ctx.JSON(code, toDishResponse(dish))
}

// RemoveDish handles DELETE /api/v1/menu/dishes/{dishId} - delists a dish.
func (s *Server) RemoveDish(ctx echo.Context) error {
	caller, err := actorFromRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	dishID, err := kernel.DishIDFromString(ctx.Param("dishId"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveDishCommand(caller, dishID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.removeDishHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// limitParam reads the optional page size parameter. Zero means "use the
// default"; range clamping happens in the query constructors.
func limitParam(ctx echo.Context) (int, error) {
	raw := ctx.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("limit", err)
	}
	return limit, nil
}

// Package http implements the inbound REST adapter for the rental service.
package http

import (
	"net/http"
	"strconv"
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/rental"
	"rental/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the rental order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler  commands.PlaceOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:  placeOrderHandler,
		updateOrderHandler: updateOrderHandler,
		cancelOrderHandler: cancelOrderHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
	}
}

// RegisterRoutes attaches the order API routes to the given group.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", s.PlaceOrder)
	g.GET("/orders", s.ListOrders)
	g.GET("/orders/:orderID", s.GetOrder)
	g.PATCH("/orders/:orderID", s.UpdateOrder)
	g.DELETE("/orders/:orderID", s.CancelOrder)
}

// PlaceOrder handles POST /api/v1/orders.
//
//	@Summary		Place a rental order
//	@Description	Places a new rental order for a client and vehicle. The order starts in open status.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlaceOrderRequest	true	"Order to place"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	Error
//	@Failure		404		{object}	Error
//	@Failure		409		{object}	Error
//	@Security		BearerAuth
//	@Router			/orders [post]
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("clientId", err))
	}
	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("vehicleId", err))
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), clientID, vehicleID)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(order))
}

// UpdateOrder handles PATCH /api/v1/orders/{orderID}.
//
//	@Summary		Update a rental order
//	@Description	Moves an order through its lifecycle. A postal code with a rental window approves the order, a postal code with status "Cancelled" cancels it, and status "Closed" alone closes it.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			orderID	path		string				true	"Order identifier"
//	@Param			request	body		UpdateOrderRequest	true	"Requested transition"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	Error
//	@Failure		404		{object}	Error
//	@Failure		409		{object}	Error
//	@Security		BearerAuth
//	@Router			/orders/{orderID} [patch]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderID", err))
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	requestedStatus := rental.Unknown
	if req.Status != "" {
		if requestedStatus, err = rental.StatusFromString(req.Status); err != nil {
			return respondError(ctx, err)
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.PostalCode, req.StartDate, req.EndDate, requestedStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(order))
}

// CancelOrder handles DELETE /api/v1/orders/{orderID}.
//
//	@Summary		Cancel a rental order
//	@Description	Cancels an open rental order. Approved and closed orders cannot be cancelled this way.
//	@Tags			orders
//	@Produce		json
//	@Param			orderID	path	string	true	"Order identifier"
//	@Success		204
//	@Failure		400	{object}	Error
//	@Failure		404	{object}	Error
//	@Failure		409	{object}	Error
//	@Security		BearerAuth
//	@Router			/orders/{orderID} [delete]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderID", err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/{orderID}.
//
//	@Summary		Get a rental order
//	@Description	Retrieves a single rental order together with the renting client's name and CPF.
//	@Tags			orders
//	@Produce		json
//	@Param			orderID	path		string	true	"Order identifier"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	Error
//	@Failure		404		{object}	Error
//	@Security		BearerAuth
//	@Router			/orders/{orderID} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderID", err))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queryToResponse(order))
}

// ListOrders handles GET /api/v1/orders.
//
//	@Summary		List rental orders
//	@Description	Retrieves a filtered, paginated page of rental orders, newest first by default.
//	@Tags			orders
//	@Produce		json
//	@Param			status		query		string	false	"Filter by lifecycle status"	Enums(Open, Approved, Closed, Cancelled)
//	@Param			cpf			query		string	false	"Filter by the renting client's CPF (eleven digits)"
//	@Param			from		query		string	false	"Lower placement-date bound (RFC 3339 or YYYY-MM-DD)"
//	@Param			to			query		string	false	"Upper placement-date bound (RFC 3339 or YYYY-MM-DD)"
//	@Param			sort		query		string	false	"Sort key: order_date or status, prefix with - for descending"
//	@Param			page		query		int		false	"1-based page number"
//	@Param			pageSize	query		int		false	"Rows per page, at most 100"
//	@Success		200			{object}	OrderListResponse
//	@Failure		400			{object}	Error
//	@Security		BearerAuth
//	@Router			/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	from, err := parseDateParam(ctx.QueryParam("from"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("from", err))
	}
	to, err := parseDateParam(ctx.QueryParam("to"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("to", err))
	}

	page, err := parseIntParam(ctx.QueryParam("page"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("page", err))
	}
	pageSize, err := parseIntParam(ctx.QueryParam("pageSize"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("pageSize", err))
	}

	query, err := queries.NewListOrdersQuery(
		ctx.QueryParam("status"),
		ctx.QueryParam("cpf"),
		from, to,
		ctx.QueryParam("sort"),
		page, pageSize,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	list, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, listToResponse(list))
}

// Health handles GET /health for liveness probes.
//
//	@Summary	Service health
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// parseDateParam parses an optional date query parameter.
// Accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		if parsed, err = time.Parse("2006-01-02", value); err != nil {
			return nil, err
		}
	}
	return &parsed, nil
}

// parseIntParam parses an optional integer query parameter, zero when absent.
func parseIntParam(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

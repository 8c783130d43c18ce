package http

import (
	"net/http"
	"strconv"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/pricing"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// organizationHeader identifies the tenant on every request. All reads and
// writes are scoped to it; a resource belonging to another organization is
// indistinguishable from a missing one.
const organizationHeader = "X-Organization-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createProductHandler         commands.CreateProductCommandHandler
	recordPriceChangeHandler     commands.RecordPriceChangeCommandHandler
	placeOrderHandler            commands.PlaceOrderCommandHandler
	changeOrderStatusHandler     commands.ChangeOrderStatusCommandHandler
	setOrderPaymentStatusHandler commands.SetOrderPaymentStatusCommandHandler

	// Query handlers
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
	getCurrentPriceHandler     queries.GetCurrentPriceQueryHandler
	getPriceAtTimeHandler      queries.GetPriceAtTimeQueryHandler
	getPriceHistoryHandler     queries.GetPriceHistoryQueryHandler
	getPriceChangeStatsHandler queries.GetPriceChangeStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createProductHandler commands.CreateProductCommandHandler,
	recordPriceChangeHandler commands.RecordPriceChangeCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	setOrderPaymentStatusHandler commands.SetOrderPaymentStatusCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCurrentPriceHandler queries.GetCurrentPriceQueryHandler,
	getPriceAtTimeHandler queries.GetPriceAtTimeQueryHandler,
	getPriceHistoryHandler queries.GetPriceHistoryQueryHandler,
	getPriceChangeStatsHandler queries.GetPriceChangeStatsQueryHandler,
) *Server {
	return &Server{
		createProductHandler:         createProductHandler,
		recordPriceChangeHandler:     recordPriceChangeHandler,
		placeOrderHandler:            placeOrderHandler,
		changeOrderStatusHandler:     changeOrderStatusHandler,
		setOrderPaymentStatusHandler: setOrderPaymentStatusHandler,
		getActiveOrdersHandler:       getActiveOrdersHandler,
		getOrderHandler:              getOrderHandler,
		getCurrentPriceHandler:       getCurrentPriceHandler,
		getPriceAtTimeHandler:        getPriceAtTimeHandler,
		getPriceHistoryHandler:       getPriceHistoryHandler,
		getPriceChangeStatsHandler:   getPriceChangeStatsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/products", s.CreateProduct)
	api.POST("/products/:productID/prices", s.RecordPriceChange)
	api.GET("/products/:productID/prices", s.GetPriceHistory)
	api.GET("/products/:productID/prices/current", s.GetCurrentPrice)
	api.GET("/products/:productID/prices/at", s.GetPriceAtTime)
	api.GET("/price-stats", s.GetPriceChangeStats)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetActiveOrders)
	api.GET("/orders/:orderID", s.GetOrder)
	api.PUT("/orders/:orderID/status", s.ChangeOrderStatus)
	api.PUT("/orders/:orderID/payment-status", s.SetOrderPaymentStatus)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateProduct handles POST /api/v1/products - registers a product and
// records its initial price in the same transaction.
func (s *Server) CreateProduct(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	categoryID, err := parseOptionalUUID("category_id", req.CategoryID)
	if err != nil {
		return respondError(ctx, err)
	}

	price, err := kernel.MoneyFromString(req.Price, req.Currency)
	if err != nil {
		return respondError(ctx, err)
	}

	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateProductCommand(
		productID, organizationID, categoryID, req.Name, req.Description, price)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, CreatedResponse{ID: productID.Bytes()})
}

// RecordPriceChange handles POST /api/v1/products/:productID/prices - appends
// an entry to the product's price ledger.
func (s *Server) RecordPriceChange(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := parseUUID("productID", ctx.Param("productID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req RecordPriceChangeRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	price, err := kernel.MoneyFromString(req.Price, req.Currency)
	if err != nil {
		return respondError(ctx, err)
	}

	reason, err := pricing.ChangeReasonFromString(req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	createdBy, err := parseOptionalUUID("created_by", req.CreatedBy)
	if err != nil {
		return respondError(ctx, err)
	}

	effectiveFrom := time.Now().UTC()
	if req.EffectiveFrom != nil {
		effectiveFrom = req.EffectiveFrom.UTC()
	}

	cmd, err := commands.NewRecordPriceChangeCommand(
		organizationID, productID, price, reason, req.Notes, effectiveFrom, createdBy)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.recordPriceChangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetCurrentPrice handles GET /api/v1/products/:productID/prices/current -
// returns the ledger entry currently in effect.
func (s *Server) GetCurrentPrice(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := parseUUID("productID", ctx.Param("productID"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetCurrentPriceQuery(organizationID, productID)
	if err != nil {
		return respondError(ctx, err)
	}

	entry, err := s.getCurrentPriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toPriceEntryModel(entry))
}

// GetPriceAtTime handles GET /api/v1/products/:productID/prices/at - returns
// the ledger entry that was in effect at the given moment.
func (s *Server) GetPriceAtTime(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := parseUUID("productID", ctx.Param("productID"))
	if err != nil {
		return respondError(ctx, err)
	}

	at, err := parseTime("at", ctx.QueryParam("at"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPriceAtTimeQuery(organizationID, productID, at)
	if err != nil {
		return respondError(ctx, err)
	}

	entry, err := s.getPriceAtTimeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toPriceEntryModel(entry))
}

// GetPriceHistory handles GET /api/v1/products/:productID/prices - returns
// ledger entries newest first, optionally filtered by effective-from range,
// reason and limit.
func (s *Server) GetPriceHistory(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	productID, err := parseUUID("productID", ctx.Param("productID"))
	if err != nil {
		return respondError(ctx, err)
	}

	from, err := parseOptionalTime("from", ctx.QueryParam("from"))
	if err != nil {
		return respondError(ctx, err)
	}

	to, err := parseOptionalTime("to", ctx.QueryParam("to"))
	if err != nil {
		return respondError(ctx, err)
	}

	var reason *pricing.ChangeReason
	if raw := ctx.QueryParam("reason"); raw != "" {
		parsed, reasonErr := pricing.ChangeReasonFromString(raw)
		if reasonErr != nil {
			return respondError(ctx, reasonErr)
		}
		reason = &parsed
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("limit", err))
		}
	}

	query, err := queries.NewGetPriceHistoryQuery(organizationID, productID, from, to, reason, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.getPriceHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toPriceEntryModels(entries))
}

// GetPriceChangeStats handles GET /api/v1/price-stats - aggregates price
// changes effective within [from, to], optionally for a single product.
func (s *Server) GetPriceChangeStats(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var productID *kernel.UUID
	if raw := ctx.QueryParam("product_id"); raw != "" {
		parsed, idErr := parseUUID("product_id", raw)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		productID = &parsed
	}

	from, err := parseTime("from", ctx.QueryParam("from"))
	if err != nil {
		return respondError(ctx, err)
	}

	to, err := parseTime("to", ctx.QueryParam("to"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPriceChangeStatsQuery(organizationID, productID, from, to)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.getPriceChangeStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toPriceChangeStatsModel(stats))
}

// PlaceOrder handles POST /api/v1/orders - places a new order with prices
// resolved from the ledger and frozen into the order lines.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	tableID, err := parseOptionalUUID("table_id", req.TableID)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]commands.OrderLine, len(req.Lines))
	for i, line := range req.Lines {
		lineProductID, lineErr := parseUUID("product_id", line.ProductID)
		if lineErr != nil {
			return respondError(ctx, lineErr)
		}

		modifierAmount := "0"
		if line.ModifierTotal != nil {
			modifierAmount = *line.ModifierTotal
		}
		modifierTotal, lineErr := kernel.MoneyFromString(modifierAmount, req.Currency)
		if lineErr != nil {
			return respondError(ctx, lineErr)
		}

		lines[i] = commands.OrderLine{
			ProductID:     lineProductID,
			Quantity:      line.Quantity,
			ModifierTotal: modifierTotal,
		}
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, organizationID, tableID, lines, req.PricedAt)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, CreatedResponse{ID: orderID.Bytes()})
}

// GetActiveOrders handles GET /api/v1/orders - returns the organization's
// orders that are not in a terminal status.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetActiveOrdersQuery(organizationID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toOrderModels(orders))
}

// GetOrder handles GET /api/v1/orders/:orderID - returns one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, organizationID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return respondData(ctx, http.StatusOK, toOrderModel(response))
}

// ChangeOrderStatus handles PUT /api/v1/orders/:orderID/status - moves an
// order along its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, organizationID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetOrderPaymentStatus handles PUT /api/v1/orders/:orderID/payment-status -
// changes an order's payment status.
func (s *Server) SetOrderPaymentStatus(ctx echo.Context) error {
	organizationID, err := s.organizationID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SetOrderPaymentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	target, err := order.PaymentStatusFromString(req.PaymentStatus)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetOrderPaymentStatusCommand(orderID, organizationID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setOrderPaymentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) organizationID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(organizationHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(organizationHeader + " header")
	}
	return parseUUID(organizationHeader, raw)
}

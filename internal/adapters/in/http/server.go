// Package http exposes the order workflow over REST. It coordinates between
// echo handlers and the application's command and query handlers, translating
// domain errors into HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface used by the role views.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	submitOrderHandler      commands.SubmitOrderCommandHandler
	approveOrderHandler     commands.ApproveOrderCommandHandler
	priceOrderHandler       commands.PriceOrderCommandHandler
	completeCheckingHandler commands.CompleteCheckingCommandHandler
	finalizeOrderHandler    commands.FinalizeOrderCommandHandler

	// Query handlers
	getCatalogHandler        queries.GetCatalogQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getActiveOrdersHandler   queries.GetActiveOrdersQueryHandler
	getArchivedOrdersHandler queries.GetArchivedOrdersQueryHandler
	getCurrentOrderHandler   queries.GetCurrentOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	priceOrderHandler commands.PriceOrderCommandHandler,
	completeCheckingHandler commands.CompleteCheckingCommandHandler,
	finalizeOrderHandler commands.FinalizeOrderCommandHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getArchivedOrdersHandler queries.GetArchivedOrdersQueryHandler,
	getCurrentOrderHandler queries.GetCurrentOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		submitOrderHandler:       submitOrderHandler,
		approveOrderHandler:      approveOrderHandler,
		priceOrderHandler:        priceOrderHandler,
		completeCheckingHandler:  completeCheckingHandler,
		finalizeOrderHandler:     finalizeOrderHandler,
		getCatalogHandler:        getCatalogHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getArchivedOrdersHandler: getArchivedOrdersHandler,
		getCurrentOrderHandler:   getCurrentOrderHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/catalog", s.GetCatalog)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/archive", s.GetArchivedOrders)
	api.GET("/orders/current", s.GetCurrentOrder)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
}

// GetCatalog handles GET /api/v1/catalog - retrieves the product catalog.
func (s *Server) GetCatalog(ctx echo.Context) error {
	query := queries.NewGetCatalogQuery()

	items, err := s.getCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, items)
}

// GetOrders handles GET /api/v1/orders - retrieves every order.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetActiveOrders handles GET /api/v1/orders/active?role=&branch= -
// retrieves the orders the given role can currently act on.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	role := kernel.Role(ctx.QueryParam("role"))
	branch := kernel.Branch(ctx.QueryParam("branch"))

	query, err := queries.NewGetActiveOrdersQuery(role, branch)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetArchivedOrders handles GET /api/v1/orders/archive?branch= -
// retrieves completed orders.
func (s *Server) GetArchivedOrders(ctx echo.Context) error {
	branch := kernel.Branch(ctx.QueryParam("branch"))

	query, err := queries.NewGetArchivedOrdersQuery(branch)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getArchivedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetCurrentOrder handles GET /api/v1/orders/current?branch= -
// retrieves the branch's in-flight order.
func (s *Server) GetCurrentOrder(ctx echo.Context) error {
	branch := kernel.Branch(ctx.QueryParam("branch"))

	query, err := queries.NewGetCurrentOrderQuery(branch)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getCurrentOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// CreateOrder handles POST /api/v1/orders - opens a new order for a branch.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.Branch(req.Branch))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - applies one workflow
// transition. The target status selects the command; the workflow engine
// rejects everything else.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	var req AdvanceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID := ctx.Param("id")
	role := kernel.Role(req.Role)
	target := order.Status(req.Target)
	if err := target.Validate(); err != nil {
		return writeError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	var err error
	switch target {
	case order.StatusSentToFinancier:
		var cmd commands.SubmitOrderCommand
		if cmd, err = commands.NewSubmitOrderCommand(orderID, role, req.Quantities); err == nil {
			err = s.submitOrderHandler.Handle(reqCtx, cmd)
		}
	case order.StatusSentToSupplier:
		var cmd commands.ApproveOrderCommand
		if cmd, err = commands.NewApproveOrderCommand(orderID, role, req.Products); err == nil {
			err = s.approveOrderHandler.Handle(reqCtx, cmd)
		}
	case order.StatusChefChecking:
		var pricing PricingRequest
		if req.Pricing != nil {
			pricing = *req.Pricing
		}
		var cmd commands.PriceOrderCommand
		if cmd, err = commands.NewPriceOrderCommand(orderID, role, pricing.toDomain()); err == nil {
			err = s.priceOrderHandler.Handle(reqCtx, cmd)
		}
	case order.StatusFinancierChecking:
		var cmd commands.CompleteCheckingCommand
		if cmd, err = commands.NewCompleteCheckingCommand(orderID, role, checkingToDomain(req.Checking)); err == nil {
			err = s.completeCheckingHandler.Handle(reqCtx, cmd)
		}
	case order.StatusCompleted:
		var cmd commands.FinalizeOrderCommand
		if cmd, err = commands.NewFinalizeOrderCommand(orderID, role, req.Products); err == nil {
			err = s.finalizeOrderHandler.Handle(reqCtx, cmd)
		}
	default:
		err = order.NewInvalidTransitionError("", target,
			errors.New("no transition produces this status"))
	}

	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// writeError maps domain and infrastructure errors to HTTP status codes:
// not found -> 404, workflow conflicts -> 409, failed business preconditions
// -> 422, malformed values -> 400, everything else -> 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, order.ErrValidation):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

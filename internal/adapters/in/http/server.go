// Package http is the inbound HTTP adapter. It translates requests into
// commands and queries, and domain errors into status codes. Callers are
// identified by the X-Party-* headers; authentication itself lives in the
// gateway in front of this service.
package http

import (
	"net/http"

	"agritrace/internal/core/application/usecases/commands"
	"agritrace/internal/core/application/usecases/queries"
	"agritrace/internal/platform/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerCropHandler    commands.RegisterCropCommandHandler
	listCropHandler        commands.ListCropCommandHandler
	unlistCropHandler      commands.UnlistCropCommandHandler
	placeOrderHandler      commands.PlaceOrderCommandHandler
	acceptOrderHandler     commands.AcceptOrderCommandHandler
	shipOrderHandler       commands.ShipOrderCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	rejectOrderHandler     commands.RejectOrderCommandHandler
	raiseDisputeHandler    commands.RaiseDisputeCommandHandler
	resolveDisputeHandler  commands.ResolveDisputeCommandHandler
	escalateDisputeHandler commands.EscalateDisputeCommandHandler
	closeDisputeHandler    commands.CloseDisputeCommandHandler
	updateDisputeHandler   commands.UpdateDisputeCommandHandler

	// Query handlers
	traceCropHandler            queries.TraceCropQueryHandler
	getListedCropsHandler       queries.GetListedCropsQueryHandler
	getCropsByOwnerHandler      queries.GetCropsByOwnerQueryHandler
	getOrdersByPartyHandler     queries.GetOrdersByPartyQueryHandler
	getDisputesHandler          queries.GetDisputesQueryHandler
	canAccessDisputeHandler     queries.CanAccessDisputeQueryHandler
	checkOrderTransitionHandler queries.CheckOrderTransitionQueryHandler

	metrics *metrics.Metrics
}

// ServerHandlers bundles every use case handler the server dispatches to.
type ServerHandlers struct {
	RegisterCrop    commands.RegisterCropCommandHandler
	ListCrop        commands.ListCropCommandHandler
	UnlistCrop      commands.UnlistCropCommandHandler
	PlaceOrder      commands.PlaceOrderCommandHandler
	AcceptOrder     commands.AcceptOrderCommandHandler
	ShipOrder       commands.ShipOrderCommandHandler
	CompleteOrder   commands.CompleteOrderCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler
	RejectOrder     commands.RejectOrderCommandHandler
	RaiseDispute    commands.RaiseDisputeCommandHandler
	ResolveDispute  commands.ResolveDisputeCommandHandler
	EscalateDispute commands.EscalateDisputeCommandHandler
	CloseDispute    commands.CloseDisputeCommandHandler
	UpdateDispute   commands.UpdateDisputeCommandHandler

	TraceCrop            queries.TraceCropQueryHandler
	GetListedCrops       queries.GetListedCropsQueryHandler
	GetCropsByOwner      queries.GetCropsByOwnerQueryHandler
	GetOrdersByParty     queries.GetOrdersByPartyQueryHandler
	GetDisputes          queries.GetDisputesQueryHandler
	CanAccessDispute     queries.CanAccessDisputeQueryHandler
	CheckOrderTransition queries.CheckOrderTransitionQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers, m *metrics.Metrics) *Server {
	return &Server{
		registerCropHandler:    handlers.RegisterCrop,
		listCropHandler:        handlers.ListCrop,
		unlistCropHandler:      handlers.UnlistCrop,
		placeOrderHandler:      handlers.PlaceOrder,
		acceptOrderHandler:     handlers.AcceptOrder,
		shipOrderHandler:       handlers.ShipOrder,
		completeOrderHandler:   handlers.CompleteOrder,
		cancelOrderHandler:     handlers.CancelOrder,
		rejectOrderHandler:     handlers.RejectOrder,
		raiseDisputeHandler:    handlers.RaiseDispute,
		resolveDisputeHandler:  handlers.ResolveDispute,
		escalateDisputeHandler: handlers.EscalateDispute,
		closeDisputeHandler:    handlers.CloseDispute,
		updateDisputeHandler:   handlers.UpdateDispute,

		traceCropHandler:            handlers.TraceCrop,
		getListedCropsHandler:       handlers.GetListedCrops,
		getCropsByOwnerHandler:      handlers.GetCropsByOwner,
		getOrdersByPartyHandler:     handlers.GetOrdersByParty,
		getDisputesHandler:          handlers.GetDisputes,
		canAccessDisputeHandler:     handlers.CanAccessDispute,
		checkOrderTransitionHandler: handlers.CheckOrderTransition,

		metrics: m,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance. The trace
// lookup, health check, and metrics endpoints are anonymous; everything
// under /api/v1 except the trace lookup requires party headers.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.Recover())

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.GET("/trace/:token", s.TraceCrop)

	authed := api.Group("", PartyContext())

	authed.POST("/crops", s.RegisterCrop)
	authed.POST("/crops/:id/list", s.ListCrop)
	authed.POST("/crops/:id/unlist", s.UnlistCrop)
	authed.GET("/crops/listed", s.GetListedCrops)
	authed.GET("/crops/mine", s.GetMyCrops)

	authed.POST("/orders", s.PlaceOrder)
	authed.POST("/orders/:id/accept", s.AcceptOrder)
	authed.POST("/orders/:id/ship", s.ShipOrder)
	authed.POST("/orders/:id/complete", s.CompleteOrder)
	authed.POST("/orders/:id/cancel", s.CancelOrder)
	authed.POST("/orders/:id/reject", s.RejectOrder)
	authed.GET("/orders", s.GetMyOrders)
	authed.GET("/orders/:id/can-transition", s.CheckOrderTransition)

	authed.POST("/disputes", s.RaiseDispute)
	authed.POST("/disputes/:id/resolve", s.ResolveDispute)
	authed.POST("/disputes/:id/escalate", s.EscalateDispute)
	authed.POST("/disputes/:id/close", s.CloseDispute)
	authed.PATCH("/disputes/:id", s.UpdateDispute)
	authed.GET("/disputes", s.GetDisputes)
	authed.GET("/disputes/:id/access", s.CanAccessDispute)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

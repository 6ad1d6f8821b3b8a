package http

import (
	"net/http"
	"time"

	"agritrace/internal/core/application/usecases/commands"
	"agritrace/internal/core/application/usecases/queries"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	CropID          string  `json:"cropId"`
	Quantity        float64 `json:"quantity"`
	Price           float64 `json:"price"`
	DeliveryAddress string  `json:"deliveryAddress"`
	Notes           string  `json:"notes,omitempty"`
}

// PlaceOrder handles POST /api/v1/orders - places a purchase order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cropID, err := kernel.UUIDFromString(req.CropID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid crop id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		cropID,
		currentParty(ctx),
		req.Quantity,
		req.Price,
		req.DeliveryAddress,
		req.Notes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.metrics.OrdersPlaced.Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, currentParty(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.metrics.ObserveCropTransition("ORDERED")
	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewShipOrderCommand(orderID, currentParty(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.metrics.ObserveCropTransition("SHIPPED")
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete. Completion also
// transfers crop ownership to the buyer.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, currentParty(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.metrics.ObserveCropTransition("DELIVERED")
	s.metrics.OwnershipTransfers.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, currentParty(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrderRequest is the body of POST /api/v1/orders/:id/reject.
type RejectOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// RejectOrder handles POST /api/v1/orders/:id/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	var req RejectOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, currentParty(ctx), req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PartyOrder is one entry in GET /api/v1/orders.
type PartyOrder struct {
	ID              string    `json:"id"`
	CropID          string    `json:"cropId"`
	Status          string    `json:"status"`
	Quantity        float64   `json:"quantity"`
	Price           float64   `json:"price"`
	DeliveryAddress string    `json:"deliveryAddress"`
	BuyerIdentity   string    `json:"buyerIdentity"`
	SellerIdentity  string    `json:"sellerIdentity"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// GetMyOrders handles GET /api/v1/orders - orders the caller participates in.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByPartyQuery(currentParty(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersByPartyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PartyOrder, len(orders))
	for i, o := range orders {
		response[i] = PartyOrder{
			ID:              o.ID.String(),
			CropID:          o.CropID.String(),
			Status:          o.Status,
			Quantity:        o.Quantity,
			Price:           o.Price,
			DeliveryAddress: o.DeliveryAddress,
			BuyerIdentity:   o.BuyerIdentity,
			SellerIdentity:  o.SellerIdentity,
			RejectionReason: o.RejectionReason,
			CreatedAt:       o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionVerdict is the body of GET /api/v1/orders/:id/can-transition.
type TransitionVerdict struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Allowed bool   `json:"allowed"`
}

// CheckOrderTransition handles GET /api/v1/orders/:id/can-transition?to=SHIPPED.
// A disallowed transition is reported in the verdict, not as an error.
func (s *Server) CheckOrderTransition(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid order id")
	}

	target, err := order.StatusFromString(ctx.QueryParam("to"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid target status")
	}

	query, err := queries.NewCheckOrderTransitionQuery(orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	verdict, err := s.checkOrderTransitionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionVerdict{
		From:    verdict.From,
		To:      verdict.To,
		Allowed: verdict.Allowed,
	})
}

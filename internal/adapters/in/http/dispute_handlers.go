package http

import (
	"net/http"
	"time"

	"agritrace/internal/core/application/usecases/commands"
	"agritrace/internal/core/application/usecases/queries"
	"agritrace/internal/core/domain/model/dispute"
	"agritrace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RaiseDisputeRequest is the body of POST /api/v1/disputes.
// OrderID is optional; a dispute can target a crop alone.
type RaiseDisputeRequest struct {
	CropID      string `json:"cropId"`
	OrderID     string `json:"orderId,omitempty"`
	Description string `json:"description"`
}

// RaiseDispute handles POST /api/v1/disputes - opens a dispute.
func (s *Server) RaiseDispute(ctx echo.Context) error {
	var req RaiseDisputeRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cropID, err := kernel.UUIDFromString(req.CropID)
	if err != nil {
		return respondBadRequest(ctx, "Invalid crop id")
	}

	var orderID *kernel.UUID
	if req.OrderID != "" {
		parsed, parseErr := kernel.UUIDFromString(req.OrderID)
		if parseErr != nil {
			return respondBadRequest(ctx, "Invalid order id")
		}
		orderID = &parsed
	}

	disputeID := kernel.NewUUID()
	cmd, err := commands.NewRaiseDisputeCommand(
		disputeID, cropID, orderID, currentParty(ctx), req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.raiseDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.metrics.DisputesOpened.Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: disputeID.String()})
}

// ResolveDisputeRequest is the body of POST /api/v1/disputes/:id/resolve.
type ResolveDisputeRequest struct {
	Resolution string `json:"resolution"`
	AdminNotes string `json:"adminNotes,omitempty"`
}

// ResolveDispute handles POST /api/v1/disputes/:id/resolve. Administrators only.
func (s *Server) ResolveDispute(ctx echo.Context) error {
	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid dispute id")
	}

	var req ResolveDisputeRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewResolveDisputeCommand(
		disputeID, currentParty(ctx), req.Resolution, req.AdminNotes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.resolveDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DisputeReasonRequest is the body of the escalate and close endpoints.
type DisputeReasonRequest struct {
	Reason string `json:"reason"`
}

// EscalateDispute handles POST /api/v1/disputes/:id/escalate.
func (s *Server) EscalateDispute(ctx echo.Context) error {
	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid dispute id")
	}

	var req DisputeReasonRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEscalateDisputeCommand(disputeID, currentParty(ctx), req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.escalateDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseDispute handles POST /api/v1/disputes/:id/close.
func (s *Server) CloseDispute(ctx echo.Context) error {
	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid dispute id")
	}

	var req DisputeReasonRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCloseDisputeCommand(disputeID, currentParty(ctx), req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.closeDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateDisputeRequest is the body of PATCH /api/v1/disputes/:id.
// At least one field must be present.
type UpdateDisputeRequest struct {
	Description string `json:"description,omitempty"`
	Evidence    string `json:"evidence,omitempty"`
}

// UpdateDispute handles PATCH /api/v1/disputes/:id - amends an open dispute.
func (s *Server) UpdateDispute(ctx echo.Context) error {
	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid dispute id")
	}

	var req UpdateDisputeRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDisputeCommand(
		disputeID, currentParty(ctx), req.Description, req.Evidence)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DisputeSummary is one entry in GET /api/v1/disputes.
type DisputeSummary struct {
	ID             string    `json:"id"`
	CropID         string    `json:"cropId"`
	OrderID        string    `json:"orderId,omitempty"`
	RaiserIdentity string    `json:"raiserIdentity"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	Resolution     string    `json:"resolution,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// GetDisputes handles GET /api/v1/disputes - disputes visible to the caller.
// Administrators see every dispute; everyone else sees the ones they raised.
func (s *Server) GetDisputes(ctx echo.Context) error {
	var statusFilter *dispute.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := dispute.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &parsed
	}

	query, err := queries.NewGetDisputesQuery(currentParty(ctx), statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	disputes, err := s.getDisputesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DisputeSummary, len(disputes))
	for i, d := range disputes {
		summary := DisputeSummary{
			ID:             d.ID.String(),
			CropID:         d.CropID.String(),
			RaiserIdentity: d.RaiserIdentity,
			Description:    d.Description,
			Status:         d.Status,
			Resolution:     d.Resolution,
			CreatedAt:      d.CreatedAt,
		}
		if d.OrderID != nil {
			summary.OrderID = d.OrderID.String()
		}
		response[i] = summary
	}

	return ctx.JSON(http.StatusOK, response)
}

// AccessVerdict is the body of GET /api/v1/disputes/:id/access.
type AccessVerdict struct {
	Allowed bool `json:"allowed"`
}

// CanAccessDispute handles GET /api/v1/disputes/:id/access - reports whether
// the caller may view the dispute.
func (s *Server) CanAccessDispute(ctx echo.Context) error {
	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid dispute id")
	}

	query, err := queries.NewCanAccessDisputeQuery(disputeID, currentParty(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	allowed, err := s.canAccessDisputeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AccessVerdict{Allowed: allowed})
}

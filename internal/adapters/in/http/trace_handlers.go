package http

import (
	"net/http"
	"time"

	"agritrace/internal/core/application/usecases/queries"
	"agritrace/internal/core/domain/model/crop"

	"github.com/labstack/echo/v4"
)

// TraceEvent is one custody event in the public trace view.
type TraceEvent struct {
	Action      string    `json:"action"`
	FromState   string    `json:"fromState,omitempty"`
	ToState     string    `json:"toState"`
	Description string    `json:"description"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// TraceView is the body of GET /api/v1/trace/:token. It exposes the current
// owner's display identity but no party identifiers.
type TraceView struct {
	TraceToken     string       `json:"traceToken"`
	Name           string       `json:"name"`
	Quantity       float64      `json:"quantity"`
	HarvestDate    time.Time    `json:"harvestDate"`
	Location       string       `json:"location"`
	CertificateRef string       `json:"certificateRef,omitempty"`
	State          string       `json:"state"`
	OwnerIdentity  string       `json:"ownerIdentity"`
	OwnerRole      string       `json:"ownerRole"`
	History        []TraceEvent `json:"history"`
}

// TraceCrop handles GET /api/v1/trace/:token - the anonymous provenance
// lookup backing QR code scans.
func (s *Server) TraceCrop(ctx echo.Context) error {
	query, err := queries.NewTraceCropQuery(ctx.Param("token"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid trace token")
	}

	view, err := s.traceCropHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	history := make([]TraceEvent, len(view.History))
	for i, event := range view.History {
		fromState := event.FromState
		if fromState == crop.StateUnknown.String() {
			// Registration entries have no from-state.
			fromState = ""
		}

		history[i] = TraceEvent{
			Action:      event.Action,
			FromState:   fromState,
			ToState:     event.ToState,
			Description: event.Description,
			RecordedAt:  event.RecordedAt,
		}
	}

	s.metrics.TraceLookups.Inc()
	return ctx.JSON(http.StatusOK, TraceView{
		TraceToken:     view.TraceToken,
		Name:           view.Name,
		Quantity:       view.Quantity,
		HarvestDate:    view.HarvestDate,
		Location:       view.Location,
		CertificateRef: view.CertificateRef,
		State:          view.State,
		OwnerIdentity:  view.OwnerIdentity,
		OwnerRole:      view.OwnerRole,
		History:        history,
	})
}

package http

import (
	"net/http"
	"time"

	"agritrace/internal/core/application/usecases/commands"
	"agritrace/internal/core/application/usecases/queries"
	"agritrace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterCropRequest is the body of POST /api/v1/crops.
type RegisterCropRequest struct {
	Name           string    `json:"name"`
	Quantity       float64   `json:"quantity"`
	HarvestDate    time.Time `json:"harvestDate"`
	Location       string    `json:"location"`
	CertificateRef string    `json:"certificateRef,omitempty"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// RegisterCrop handles POST /api/v1/crops - registers a new crop batch.
func (s *Server) RegisterCrop(ctx echo.Context) error {
	var req RegisterCropRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cropID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCropCommand(
		cropID,
		currentParty(ctx),
		req.Name,
		req.Quantity,
		req.HarvestDate,
		req.Location,
		req.CertificateRef,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.registerCropHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.metrics.CropsRegistered.Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: cropID.String()})
}

// ListCrop handles POST /api/v1/crops/:id/list - opens a crop for purchase.
func (s *Server) ListCrop(ctx echo.Context) error {
	cropID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid crop id")
	}

	cmd, err := commands.NewListCropCommand(cropID, currentParty(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.listCropHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.metrics.ObserveCropTransition("LISTED")
	return ctx.NoContent(http.StatusNoContent)
}

// UnlistCrop handles POST /api/v1/crops/:id/unlist - withdraws a listing.
func (s *Server) UnlistCrop(ctx echo.Context) error {
	cropID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid crop id")
	}

	cmd, err := commands.NewUnlistCropCommand(cropID, currentParty(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.unlistCropHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	s.metrics.ObserveCropTransition("CREATED")
	return ctx.NoContent(http.StatusNoContent)
}

// ListedCrop is one marketplace listing in GET /api/v1/crops/listed.
type ListedCrop struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Quantity       float64   `json:"quantity"`
	HarvestDate    time.Time `json:"harvestDate"`
	Location       string    `json:"location"`
	CertificateRef string    `json:"certificateRef,omitempty"`
	OwnerIdentity  string    `json:"ownerIdentity"`
	TraceToken     string    `json:"traceToken"`
}

// GetListedCrops handles GET /api/v1/crops/listed - the marketplace view.
func (s *Server) GetListedCrops(ctx echo.Context) error {
	query := queries.NewGetListedCropsQuery()

	crops, err := s.getListedCropsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ListedCrop, len(crops))
	for i, c := range crops {
		response[i] = ListedCrop{
			ID:             c.ID.String(),
			Name:           c.Name,
			Quantity:       c.Quantity,
			HarvestDate:    c.HarvestDate,
			Location:       c.Location,
			CertificateRef: c.CertificateRef,
			OwnerIdentity:  c.OwnerIdentity,
			TraceToken:     c.TraceToken,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OwnedCrop is one entry in GET /api/v1/crops/mine.
type OwnedCrop struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Quantity       float64   `json:"quantity"`
	HarvestDate    time.Time `json:"harvestDate"`
	Location       string    `json:"location"`
	CertificateRef string    `json:"certificateRef,omitempty"`
	State          string    `json:"state"`
	TraceToken     string    `json:"traceToken"`
	Version        int64     `json:"version"`
}

// GetMyCrops handles GET /api/v1/crops/mine - the caller's own crops.
func (s *Server) GetMyCrops(ctx echo.Context) error {
	query, err := queries.NewGetCropsByOwnerQuery(currentParty(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	crops, err := s.getCropsByOwnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OwnedCrop, len(crops))
	for i, c := range crops {
		response[i] = OwnedCrop{
			ID:             c.ID.String(),
			Name:           c.Name,
			Quantity:       c.Quantity,
			HarvestDate:    c.HarvestDate,
			Location:       c.Location,
			CertificateRef: c.CertificateRef,
			State:          c.State,
			TraceToken:     c.TraceToken,
			Version:        c.Version,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

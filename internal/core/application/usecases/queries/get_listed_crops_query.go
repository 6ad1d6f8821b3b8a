package queries

import (
	"errors"
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/guard"
)

var ErrGetListedCropsQueryIsNotConstructed = errors.New(
	"GetListedCropsQuery must be created via NewGetListedCropsQuery constructor",
)

// GetListedCropsQuery retrieves every crop currently open for purchase.
// This is the marketplace browse view for buyers.
type GetListedCropsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetListedCropsQuery creates a query to retrieve the marketplace listing.
func NewGetListedCropsQuery() GetListedCropsQuery {
	return GetListedCropsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetListedCropsQuery) Validate() error {
	return q.guard.Validate(ErrGetListedCropsQueryIsNotConstructed)
}

// ListedCropResponse represents one purchasable crop.
type ListedCropResponse struct {
	ID             kernel.UUID
	Name           string
	Quantity       float64
	HarvestDate    time.Time
	Location       string
	CertificateRef string
	OwnerIdentity  string
	TraceToken     string
}

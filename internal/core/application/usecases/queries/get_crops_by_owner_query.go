package queries

import (
	"errors"
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/guard"
)

var ErrGetCropsByOwnerQueryIsNotConstructed = errors.New(
	"GetCropsByOwnerQuery must be created via NewGetCropsByOwnerQuery constructor",
)

// GetCropsByOwnerQuery retrieves every crop currently owned by a party,
// whatever its lifecycle state.
type GetCropsByOwnerQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCropsByOwnerQuery creates a query for a party's crop holdings.
func NewGetCropsByOwnerQuery(ownerID kernel.UUID) (GetCropsByOwnerQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetCropsByOwnerQuery{}, err
	}

	return GetCropsByOwnerQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCropsByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetCropsByOwnerQueryIsNotConstructed)
}

// OwnerID returns the owning party's identifier.
func (q GetCropsByOwnerQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// OwnedCropResponse represents one crop in a party's holdings.
type OwnedCropResponse struct {
	ID             kernel.UUID
	Name           string
	Quantity       float64
	HarvestDate    time.Time
	Location       string
	CertificateRef string
	State          string
	TraceToken     string
	Version        int64
}

package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agritrace/internal/core/domain/model/kernel"
)

// GetCropsByOwnerQueryHandler serves a party's crop holdings view.
type GetCropsByOwnerQueryHandler struct {
	db *gorm.DB
}

// NewGetCropsByOwnerQueryHandler creates a handler for crop holdings queries.
func NewGetCropsByOwnerQueryHandler(db *gorm.DB) GetCropsByOwnerQueryHandler {
	return GetCropsByOwnerQueryHandler{db: db}
}

// Handle retrieves the owner's crops, most recently updated first.
func (h GetCropsByOwnerQueryHandler) Handle(
	ctx context.Context,
	query GetCropsByOwnerQuery,
) ([]OwnedCropResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	crops := make([]OwnedCropResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity,
			harvest_date,
			location,
			certificate_ref,
			state,
			trace_token,
			version
		FROM crops
		WHERE owner_id = ?
		ORDER BY updated_at DESC
	`, query.OwnerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cropResp OwnedCropResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&cropResp.Name,
			&cropResp.Quantity,
			&cropResp.HarvestDate,
			&cropResp.Location,
			&cropResp.CertificateRef,
			&cropResp.State,
			&cropResp.TraceToken,
			&cropResp.Version,
		); err != nil {
			return nil, err
		}

		cropID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		cropResp.ID = cropID

		crops = append(crops, cropResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return crops, nil
}

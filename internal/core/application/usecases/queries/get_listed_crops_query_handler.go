package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
)

// GetListedCropsQueryHandler serves the marketplace browse view.
type GetListedCropsQueryHandler struct {
	db *gorm.DB
}

// NewGetListedCropsQueryHandler creates a handler for marketplace queries.
func NewGetListedCropsQueryHandler(db *gorm.DB) GetListedCropsQueryHandler {
	return GetListedCropsQueryHandler{db: db}
}

// Handle retrieves all LISTED crops, newest listing first.
func (h GetListedCropsQueryHandler) Handle(
	ctx context.Context,
	query GetListedCropsQuery,
) ([]ListedCropResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	crops := make([]ListedCropResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			quantity,
			harvest_date,
			location,
			certificate_ref,
			owner_identity,
			trace_token
		FROM crops
		WHERE state = ?
		ORDER BY updated_at DESC
	`, crop.StateListed.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cropResp ListedCropResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&cropResp.Name,
			&cropResp.Quantity,
			&cropResp.HarvestDate,
			&cropResp.Location,
			&cropResp.CertificateRef,
			&cropResp.OwnerIdentity,
			&cropResp.TraceToken,
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

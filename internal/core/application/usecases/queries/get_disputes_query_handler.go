package queries

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agritrace/internal/core/domain/model/kernel"
)

// GetDisputesQueryHandler serves dispute list views.
type GetDisputesQueryHandler struct {
	db *gorm.DB
}

// NewGetDisputesQueryHandler creates a handler for dispute list queries.
func NewGetDisputesQueryHandler(db *gorm.DB) GetDisputesQueryHandler {
	return GetDisputesQueryHandler{db: db}
}

// Handle retrieves the disputes visible to the party, newest first.
// Administrators see every dispute; everyone else sees the ones they raised.
func (h GetDisputesQueryHandler) Handle(
	ctx context.Context,
	query GetDisputesQuery,
) ([]DisputeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseSelect = `
		SELECT
			id,
			crop_id,
			order_id,
			raiser_identity,
			description,
			status,
			resolution,
			created_at
		FROM disputes
	`

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if query.Party().Role() != kernel.RoleAdmin {
		conditions = append(conditions, "raiser_id = ?")
		args = append(args, query.Party().ID().String())
	}

	if filter := query.StatusFilter(); filter != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.String())
	}

	sqlQuery := baseSelect
	if len(conditions) > 0 {
		sqlQuery += `WHERE ` + strings.Join(conditions, " AND ") + ` `
	}
	sqlQuery += `ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	disputes := make([]DisputeResponse, 0)

	for rows.Next() {
		var disputeResp DisputeResponse
		var id, cropID uuid.UUID
		var orderID uuid.NullUUID

		if err = rows.Scan(
			&id,
			&cropID,
			&orderID,
			&disputeResp.RaiserIdentity,
			&disputeResp.Description,
			&disputeResp.Status,
			&disputeResp.Resolution,
			&disputeResp.CreatedAt,
		); err != nil {
			return nil, err
		}

		disputeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		disputeResp.ID = disputeID

		disputeCropID, idErr := kernel.UUIDFromBytes(cropID[:])
		if idErr != nil {
			return nil, idErr
		}
		disputeResp.CropID = disputeCropID

		if orderID.Valid {
			disputeOrderID, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			disputeResp.OrderID = &disputeOrderID
		}

		disputes = append(disputes, disputeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return disputes, nil
}

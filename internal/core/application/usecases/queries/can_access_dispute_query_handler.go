package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
)

// CanAccessDisputeQueryHandler evaluates the dispute access rule from one
// joined read. It compares identifiers only; no aggregates are loaded.
type CanAccessDisputeQueryHandler struct {
	db *gorm.DB
}

// NewCanAccessDisputeQueryHandler creates a handler for access checks.
func NewCanAccessDisputeQueryHandler(db *gorm.DB) CanAccessDisputeQueryHandler {
	return CanAccessDisputeQueryHandler{db: db}
}

// Handle reports whether the party may view the dispute.
func (h CanAccessDisputeQueryHandler) Handle(
	ctx context.Context,
	query CanAccessDisputeQuery,
) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	if query.Party().Role() == kernel.RoleAdmin {
		return true, nil
	}

	var raiserID, ownerID uuid.UUID
	var buyerID, sellerID uuid.NullUUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.raiser_id,
			c.owner_id,
			o.buyer_id,
			o.seller_id
		FROM disputes d
		JOIN crops c ON c.id = d.crop_id
		LEFT JOIN orders o ON o.id = d.order_id
		WHERE d.id = ?
	`, query.DisputeID().String()).Row()

	err := row.Scan(&raiserID, &ownerID, &buyerID, &sellerID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, errs.NewObjectNotFoundError("dispute", query.DisputeID())
	}
	if err != nil {
		return false, err
	}

	partyID := query.Party().ID().String()

	if raiserID.String() == partyID || ownerID.String() == partyID {
		return true, nil
	}
	if buyerID.Valid && buyerID.UUID.String() == partyID {
		return true, nil
	}
	if sellerID.Valid && sellerID.UUID.String() == partyID {
		return true, nil
	}

	return false, nil
}

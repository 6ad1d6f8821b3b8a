package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agritrace/internal/core/domain/model/kernel"
)

// GetOrdersByPartyQueryHandler serves a party's order history.
type GetOrdersByPartyQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByPartyQueryHandler creates a handler for party order queries.
func NewGetOrdersByPartyQueryHandler(db *gorm.DB) GetOrdersByPartyQueryHandler {
	return GetOrdersByPartyQueryHandler{db: db}
}

// Handle retrieves the party's orders on both sides of the trade,
// newest first.
func (h GetOrdersByPartyQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByPartyQuery,
) ([]PartyOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]PartyOrderResponse, 0)

	partyID := query.PartyID().String()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			crop_id,
			status,
			quantity,
			price,
			delivery_address,
			buyer_identity,
			seller_identity,
			rejection_reason,
			created_at
		FROM orders
		WHERE buyer_id = ? OR seller_id = ?
		ORDER BY created_at DESC
	`, partyID, partyID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp PartyOrderResponse
		var id, cropID uuid.UUID

		if err = rows.Scan(
			&id,
			&cropID,
			&orderResp.Status,
			&orderResp.Quantity,
			&orderResp.Price,
			&orderResp.DeliveryAddress,
			&orderResp.BuyerIdentity,
			&orderResp.SellerIdentity,
			&orderResp.RejectionReason,
			&orderResp.CreatedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orderCropID, idErr := kernel.UUIDFromBytes(cropID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.CropID = orderCropID

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

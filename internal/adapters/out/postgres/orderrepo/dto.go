// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Buyer and seller parties are denormalized into the row; the status column
// holds the persisted status name so active-order lookups can filter on it.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CropID          uuid.UUID `gorm:"type:uuid;index"`
	BuyerID         uuid.UUID `gorm:"type:uuid;index"`
	BuyerIdentity   string
	BuyerRole       string
	SellerID        uuid.UUID `gorm:"type:uuid;index"`
	SellerIdentity  string
	SellerRole      string
	Status          string `gorm:"index"`
	Quantity        float64
	Price           float64
	DeliveryAddress string
	Notes           string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	buyer := aggregate.Buyer()
	seller := aggregate.Seller()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CropID:          aggregate.CropID().Bytes(),
		BuyerID:         buyer.ID().Bytes(),
		BuyerIdentity:   buyer.Identity(),
		BuyerRole:       buyer.Role().String(),
		SellerID:        seller.ID().Bytes(),
		SellerIdentity:  seller.Identity(),
		SellerRole:      seller.Role().String(),
		Status:          aggregate.Status().String(),
		Quantity:        aggregate.Quantity(),
		Price:           aggregate.Price(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Notes:           aggregate.Notes(),
		RejectionReason: aggregate.RejectionReason(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including both parties using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cropID, err := kernel.UUIDFromBytes(dto.CropID[:])
	if err != nil {
		return nil, err
	}

	buyer, err := partyFromColumns(dto.BuyerID, dto.BuyerIdentity, dto.BuyerRole)
	if err != nil {
		return nil, err
	}

	seller, err := partyFromColumns(dto.SellerID, dto.SellerIdentity, dto.SellerRole)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		cropID,
		buyer,
		seller,
		status,
		dto.Quantity,
		dto.Price,
		dto.DeliveryAddress,
		dto.Notes,
		dto.RejectionReason,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func partyFromColumns(id uuid.UUID, identity, role string) (kernel.Party, error) {
	partyID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.Party{}, err
	}

	partyRole, err := kernel.RoleFromString(role)
	if err != nil {
		return kernel.Party{}, err
	}

	return kernel.NewParty(partyID, identity, partyRole)
}

package queries

import (
	"errors"
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/guard"
)

var ErrGetOrdersByPartyQueryIsNotConstructed = errors.New(
	"GetOrdersByPartyQuery must be created via NewGetOrdersByPartyQuery constructor",
)

// GetOrdersByPartyQuery retrieves every order a party participates in,
// as buyer or as seller.
type GetOrdersByPartyQuery struct {
	partyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByPartyQuery creates a query for a party's orders.
func NewGetOrdersByPartyQuery(partyID kernel.UUID) (GetOrdersByPartyQuery, error) {
	if err := partyID.Validate(); err != nil {
		return GetOrdersByPartyQuery{}, err
	}

	return GetOrdersByPartyQuery{
		partyID: partyID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByPartyQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByPartyQueryIsNotConstructed)
}

// PartyID returns the participating party's identifier.
func (q GetOrdersByPartyQuery) PartyID() kernel.UUID {
	return q.partyID
}

// PartyOrderResponse represents one order from the party's perspective.
type PartyOrderResponse struct {
	ID              kernel.UUID
	CropID          kernel.UUID
	Status          string
	Quantity        float64
	Price           float64
	DeliveryAddress string
	BuyerIdentity   string
	SellerIdentity  string
	RejectionReason string
	CreatedAt       time.Time
}

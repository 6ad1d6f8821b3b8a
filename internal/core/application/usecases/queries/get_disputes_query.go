package queries

import (
	"errors"
	"time"

	"agritrace/internal/core/domain/model/dispute"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/guard"
)

var ErrGetDisputesQueryIsNotConstructed = errors.New(
	"GetDisputesQuery must be created via NewGetDisputesQuery constructor",
)

// GetDisputesQuery retrieves the disputes visible to a party: those they
// raised, plus every dispute when the party is an administrator. An optional
// status narrows the list.
type GetDisputesQuery struct {
	party  kernel.Party
	status *dispute.Status

	guard guard.ConstructorGuard
}

// NewGetDisputesQuery creates a query for a party's dispute list. A nil
// status means every status.
func NewGetDisputesQuery(party kernel.Party, status *dispute.Status) (GetDisputesQuery, error) {
	if err := party.Validate(); err != nil {
		return GetDisputesQuery{}, err
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetDisputesQuery{}, err
		}
	}

	return GetDisputesQuery{
		party:  party,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDisputesQuery) Validate() error {
	return q.guard.Validate(ErrGetDisputesQueryIsNotConstructed)
}

// Party returns the requesting party.
func (q GetDisputesQuery) Party() kernel.Party {
	return q.party
}

// StatusFilter returns the optional status to narrow the list by.
func (q GetDisputesQuery) StatusFilter() *dispute.Status {
	return q.status
}

// DisputeResponse represents one dispute in the list view.
type DisputeResponse struct {
	ID             kernel.UUID
	CropID         kernel.UUID
	OrderID        *kernel.UUID
	RaiserIdentity string
	Description    string
	Status         string
	Resolution     string
	CreatedAt      time.Time
}

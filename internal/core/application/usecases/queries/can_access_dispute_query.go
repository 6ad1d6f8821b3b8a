package queries

import (
	"errors"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/guard"
)

var ErrCanAccessDisputeQueryIsNotConstructed = errors.New(
	"CanAccessDisputeQuery must be created via NewCanAccessDisputeQuery constructor",
)

// CanAccessDisputeQuery checks whether a party may view a dispute.
// Access is relational: the raiser, the crop's current owner, the buyer or
// seller of the referenced order, and administrators.
type CanAccessDisputeQuery struct {
	disputeID kernel.UUID
	party     kernel.Party

	guard guard.ConstructorGuard
}

// NewCanAccessDisputeQuery creates a dispute access check query.
func NewCanAccessDisputeQuery(disputeID kernel.UUID, party kernel.Party) (CanAccessDisputeQuery, error) {
	if err := errors.Join(disputeID.Validate(), party.Validate()); err != nil {
		return CanAccessDisputeQuery{}, err
	}

	return CanAccessDisputeQuery{
		disputeID: disputeID,
		party:     party,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CanAccessDisputeQuery) Validate() error {
	return q.guard.Validate(ErrCanAccessDisputeQueryIsNotConstructed)
}

// DisputeID returns the dispute to check.
func (q CanAccessDisputeQuery) DisputeID() kernel.UUID {
	return q.disputeID
}

// Party returns the party requesting access.
func (q CanAccessDisputeQuery) Party() kernel.Party {
	return q.party
}

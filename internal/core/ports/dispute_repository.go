package ports

import (
	"context"

	"agritrace/internal/core/domain/model/dispute"
	"agritrace/internal/core/domain/model/kernel"
)

// DisputeRepository defines the persistence contract for dispute aggregates.
type DisputeRepository interface {
	// Add persists a new dispute aggregate to storage.
	Add(ctx context.Context, aggregate *dispute.Dispute) error

	// Update persists changes to an existing dispute aggregate.
	Update(ctx context.Context, aggregate *dispute.Dispute) error

	// Get retrieves a dispute aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error)

	// GetByCropID retrieves every dispute raised against a crop,
	// newest first.
	GetByCropID(ctx context.Context, cropID kernel.UUID) ([]*dispute.Dispute, error)

	// GetByRaiser retrieves every dispute raised by the given party,
	// newest first.
	GetByRaiser(ctx context.Context, raiserID kernel.UUID) ([]*dispute.Dispute, error)
}

package ports

import (
	"context"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
)

// CropRepository defines the persistence contract for crop aggregates.
type CropRepository interface {
	// Add persists a new crop aggregate to storage.
	// The crop must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *crop.Crop) error

	// Update persists changes to an existing crop aggregate using a
	// compare-and-swap on the aggregate's version. When the stored version
	// differs from the aggregate's, the crop was modified concurrently and
	// errs.ErrConcurrencyConflict is returned; nothing is written.
	Update(ctx context.Context, aggregate *crop.Crop) error

	// Get retrieves a crop aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*crop.Crop, error)

	// GetByTraceToken retrieves a crop by its public trace token.
	// This is the entry point for anonymous provenance lookups.
	GetByTraceToken(ctx context.Context, traceToken string) (*crop.Crop, error)

	// GetByOwner retrieves all crops currently owned by the given party.
	GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*crop.Crop, error)

	// GetAllListed retrieves every crop currently open for purchase.
	GetAllListed(ctx context.Context) ([]*crop.Crop, error)
}

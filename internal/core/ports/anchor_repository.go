package ports

import (
	"context"

	"agritrace/internal/core/domain/model/provenance"
)

// AnchorRepository defines the persistence contract for ledger anchors.
// Anchors are written once per job run and never modified.
type AnchorRepository interface {
	// Add persists a newly computed anchor.
	Add(ctx context.Context, anchor *provenance.Anchor) error

	// GetLatest retrieves the most recently created anchor.
	// Returns errs.ErrObjectNotFound when no anchor exists yet.
	GetLatest(ctx context.Context) (*provenance.Anchor, error)
}

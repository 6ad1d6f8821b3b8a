package ports

import (
	"context"
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/provenance"
)

// ProvenanceRepository defines the persistence contract for the append-only
// provenance ledger. Entries are immutable once written; there is no Update
// or Delete.
type ProvenanceRepository interface {
	// Add appends a new entry to the ledger.
	Add(ctx context.Context, entry *provenance.Entry) error

	// GetByCropID retrieves every entry recorded for a crop,
	// oldest first.
	GetByCropID(ctx context.Context, cropID kernel.UUID) ([]*provenance.Entry, error)

	// GetRecordedAfter retrieves every entry recorded strictly after the
	// given instant, oldest first. Used by the ledger anchoring job.
	GetRecordedAfter(ctx context.Context, after time.Time) ([]*provenance.Entry, error)
}

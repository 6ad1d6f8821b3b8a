// Package anchorrepo persists ledger anchors, the periodic digests the
// anchoring job computes over the provenance ledger. Anchors are written once
// per run and never modified.
package anchorrepo

import (
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/provenance"

	"github.com/google/uuid"
)

// AnchorDTO represents the database structure for persisting ledger anchors.
type AnchorDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Digest     string
	EntryCount int
	CoversTo   time.Time
	CreatedAt  time.Time `gorm:"index"`
}

// TableName specifies the database table name for ledger anchors.
func (AnchorDTO) TableName() string {
	return "ledger_anchors"
}

// fromDomain converts an anchor to its database representation.
func fromDomain(anchor *provenance.Anchor) AnchorDTO {
	return AnchorDTO{
		ID:         anchor.ID().Bytes(),
		Digest:     anchor.Digest(),
		EntryCount: anchor.EntryCount(),
		CoversTo:   anchor.CoversTo(),
		CreatedAt:  anchor.CreatedAt(),
	}
}

// toDomain converts a database DTO to an anchor using RestoreAnchor.
func toDomain(dto AnchorDTO) (*provenance.Anchor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return provenance.RestoreAnchor(id, dto.Digest, dto.EntryCount, dto.CoversTo, dto.CreatedAt)
}

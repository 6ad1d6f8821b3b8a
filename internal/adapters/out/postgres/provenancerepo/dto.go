// Package provenancerepo persists the append-only provenance ledger.
// Entries are written once and never updated or deleted, so the repository
// exposes only Add and read operations.
package provenancerepo

import (
	"time"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/provenance"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting ledger entries.
// The acting party is denormalized into the row so the ledger stays readable
// even after parties change or disappear.
type EntryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CropID        uuid.UUID `gorm:"type:uuid;index"`
	Action        string
	FromState     string
	ToState       string
	ActorID       uuid.UUID `gorm:"type:uuid"`
	ActorIdentity string
	ActorRole     string
	RecordedAt    time.Time `gorm:"index"`
}

// TableName specifies the database table name for ledger entries.
func (EntryDTO) TableName() string {
	return "provenance_entries"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *provenance.Entry) EntryDTO {
	actor := entry.Actor()

	return EntryDTO{
		ID:            entry.ID().Bytes(),
		CropID:        entry.CropID().Bytes(),
		Action:        string(entry.Action()),
		FromState:     entry.FromState().String(),
		ToState:       entry.ToState().String(),
		ActorID:       actor.ID().Bytes(),
		ActorIdentity: actor.Identity(),
		ActorRole:     actor.Role().String(),
		RecordedAt:    entry.RecordedAt(),
	}
}

// toDomain converts a database DTO to a ledger entry using RestoreEntry.
func toDomain(dto EntryDTO) (*provenance.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cropID, err := kernel.UUIDFromBytes(dto.CropID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	actorRole, err := kernel.RoleFromString(dto.ActorRole)
	if err != nil {
		return nil, err
	}

	actor, err := kernel.NewParty(actorID, dto.ActorIdentity, actorRole)
	if err != nil {
		return nil, err
	}

	// Registration entries have no from-state; the column holds the
	// unknown-state marker, which the parser rejects on purpose.
	fromState := crop.StateUnknown
	if dto.FromState != crop.StateUnknown.String() {
		fromState, err = crop.StateFromString(dto.FromState)
		if err != nil {
			return nil, err
		}
	}

	toState, err := crop.StateFromString(dto.ToState)
	if err != nil {
		return nil, err
	}

	return provenance.RestoreEntry(
		id,
		cropID,
		provenance.Action(dto.Action),
		fromState,
		toState,
		actor,
		dto.RecordedAt,
	)
}

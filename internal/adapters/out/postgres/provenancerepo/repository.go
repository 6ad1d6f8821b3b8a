package provenancerepo

import (
	"context"
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/provenance"

	"gorm.io/gorm"
)

// GormProvenanceRepository implements ProvenanceRepository using GORM.
type GormProvenanceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProvenanceRepository creates a new GORM provenance repository.
func NewGormProvenanceRepository(db *gorm.DB, tracker aggregateTracker) *GormProvenanceRepository {
	return &GormProvenanceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new entry to the ledger.
func (r *GormProvenanceRepository) Add(ctx context.Context, entry *provenance.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// GetByCropID retrieves every entry recorded for a crop, oldest first.
// The id tiebreak keeps the order stable when two entries share a timestamp.
func (r *GormProvenanceRepository) GetByCropID(ctx context.Context, cropID kernel.UUID) ([]*provenance.Entry, error) {
	if err := cropID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("crop_id = ?", cropID.Bytes()).
		Order("recorded_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetRecordedAfter retrieves every entry recorded strictly after the given
// instant, oldest first.
func (r *GormProvenanceRepository) GetRecordedAfter(ctx context.Context, after time.Time) ([]*provenance.Entry, error) {
	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("recorded_at > ?", after).
		Order("recorded_at ASC, id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []EntryDTO) ([]*provenance.Entry, error) {
	entries := make([]*provenance.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}

package anchorrepo

import (
	"context"
	"errors"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/provenance"
	"agritrace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAnchorRepository implements AnchorRepository using GORM.
type GormAnchorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAnchorRepository creates a new GORM anchor repository.
func NewGormAnchorRepository(db *gorm.DB, tracker aggregateTracker) *GormAnchorRepository {
	return &GormAnchorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a newly computed anchor.
func (r *GormAnchorRepository) Add(ctx context.Context, anchor *provenance.Anchor) error {
	if err := anchor.Validate(); err != nil {
		return err
	}

	dto := fromDomain(anchor)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(anchor.ID(), anchor)
	return nil
}

// GetLatest retrieves the most recently created anchor.
func (r *GormAnchorRepository) GetLatest(ctx context.Context) (*provenance.Anchor, error) {
	var dto AnchorDTO
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ledger anchor", "latest")
		}
		return nil, err
	}

	return toDomain(dto)
}

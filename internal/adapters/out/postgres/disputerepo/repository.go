package disputerepo

import (
	"context"
	"errors"

	"agritrace/internal/core/domain/model/dispute"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDisputeRepository implements DisputeRepository using GORM.
type GormDisputeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDisputeRepository creates a new GORM dispute repository.
func NewGormDisputeRepository(db *gorm.DB, tracker aggregateTracker) *GormDisputeRepository {
	return &GormDisputeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new dispute to the database.
func (r *GormDisputeRepository) Add(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing dispute to the database. A plain Updates call
// skips zero values, which would drop cleared fields, so the whole row is
// written with Select("*").
func (r *GormDisputeRepository) Update(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DisputeDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dispute", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a dispute by ID.
func (r *GormDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DisputeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCropID retrieves every dispute raised against a crop, newest first.
func (r *GormDisputeRepository) GetByCropID(ctx context.Context, cropID kernel.UUID) ([]*dispute.Dispute, error) {
	if err := cropID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DisputeDTO
	err := r.db.WithContext(ctx).
		Where("crop_id = ?", cropID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetByRaiser retrieves every dispute raised by the given party, newest first.
func (r *GormDisputeRepository) GetByRaiser(ctx context.Context, raiserID kernel.UUID) ([]*dispute.Dispute, error) {
	if err := raiserID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DisputeDTO
	err := r.db.WithContext(ctx).
		Where("raiser_id = ?", raiserID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []DisputeDTO) ([]*dispute.Dispute, error) {
	disputes := make([]*dispute.Dispute, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		disputes = append(disputes, d)
	}

	return disputes, nil
}

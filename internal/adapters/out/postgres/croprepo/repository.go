package croprepo

import (
	"context"
	"errors"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCropRepository implements CropRepository using GORM.
type GormCropRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCropRepository creates a new GORM crop repository.
func NewGormCropRepository(db *gorm.DB, tracker aggregateTracker) *GormCropRepository {
	return &GormCropRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new crop to the database.
func (r *GormCropRepository) Add(ctx context.Context, aggregate *crop.Crop) error {
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

// Update saves an existing crop using a compare-and-swap on the version
// column. The write only lands when the stored version still matches the
// version the aggregate was loaded with; a mismatch on an existing row
// means a concurrent writer got there first.
func (r *GormCropRepository) Update(ctx context.Context, aggregate *crop.Crop) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CropDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"name":            dto.Name,
			"quantity":        dto.Quantity,
			"harvest_date":    dto.HarvestDate,
			"location":        dto.Location,
			"certificate_ref": dto.CertificateRef,
			"owner_id":        dto.OwnerID,
			"owner_identity":  dto.OwnerIdentity,
			"owner_role":      dto.OwnerRole,
			"state":           dto.State,
			"updated_at":      dto.UpdatedAt,
			"version":         gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&CropDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("crop", aggregate.ID().String())
		}
		return errs.NewConcurrencyConflictError("crop", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a crop by ID.
func (r *GormCropRepository) Get(ctx context.Context, id kernel.UUID) (*crop.Crop, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CropDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("crop", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTraceToken retrieves a crop by its public trace token.
func (r *GormCropRepository) GetByTraceToken(ctx context.Context, traceToken string) (*crop.Crop, error) {
	if traceToken == "" {
		return nil, errs.NewValueIsRequiredError("trace token")
	}

	var dto CropDTO
	if err := r.db.WithContext(ctx).First(&dto, "trace_token = ?", traceToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trace token", traceToken)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOwner retrieves all crops currently owned by the given party.
func (r *GormCropRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*crop.Crop, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CropDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllListed retrieves every crop open for purchase.
func (r *GormCropRepository) GetAllListed(ctx context.Context) ([]*crop.Crop, error) {
	var dtos []CropDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "state = ?", crop.StateListed.String()).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []CropDTO) ([]*crop.Crop, error) {
	crops := make([]*crop.Crop, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		crops = append(crops, c)
	}

	return crops, nil
}

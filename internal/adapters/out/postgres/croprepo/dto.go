// Package croprepo provides data transfer objects and mapping functions for
// crop persistence. This package implements the repository pattern for the
// crop domain aggregate, handling the conversion between domain entities and
// database representations.
package croprepo

import (
	"time"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CropDTO represents the database structure for persisting crop aggregates.
// The owner party is denormalized into the row so ownership transfers stay
// inside the aggregate's own table, and the version column carries the
// optimistic concurrency counter checked on every update.
type CropDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Quantity       float64
	HarvestDate    time.Time
	Location       string
	CertificateRef string
	TraceToken     string    `gorm:"uniqueIndex"`
	OwnerID        uuid.UUID `gorm:"type:uuid;index"`
	OwnerIdentity  string
	OwnerRole      string
	State          string `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Version        int64
}

// TableName specifies the database table name for crop entities.
// Overrides GORM's default naming convention to use "crops".
func (CropDTO) TableName() string {
	return "crops"
}

// fromDomain converts a crop domain aggregate to its database representation.
func fromDomain(aggregate *crop.Crop) CropDTO {
	owner := aggregate.Owner()

	return CropDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Quantity:       aggregate.Quantity(),
		HarvestDate:    aggregate.HarvestDate(),
		Location:       aggregate.Location(),
		CertificateRef: aggregate.CertificateRef(),
		TraceToken:     aggregate.TraceToken(),
		OwnerID:        owner.ID().Bytes(),
		OwnerIdentity:  owner.Identity(),
		OwnerRole:      owner.Role().String(),
		State:          aggregate.State().String(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database DTO to a crop domain aggregate.
// Reconstructs the complete aggregate including owner and state using RestoreCrop.
func toDomain(dto CropDTO) (*crop.Crop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	role, err := kernel.RoleFromString(dto.OwnerRole)
	if err != nil {
		return nil, err
	}

	owner, err := kernel.NewParty(ownerID, dto.OwnerIdentity, role)
	if err != nil {
		return nil, err
	}

	state, err := crop.StateFromString(dto.State)
	if err != nil {
		return nil, err
	}

	return crop.RestoreCrop(
		id,
		dto.Name,
		dto.Quantity,
		dto.HarvestDate,
		dto.Location,
		dto.CertificateRef,
		dto.TraceToken,
		owner,
		state,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

// Package disputerepo provides data transfer objects and mapping functions
// for dispute persistence. This package implements the repository pattern for
// the dispute domain aggregate, handling the conversion between domain
// entities and database representations.
package disputerepo

import (
	"time"

	"agritrace/internal/core/domain/model/dispute"
	"agritrace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DisputeDTO represents the database structure for persisting dispute
// aggregates. The order reference is optional because disputes can target a
// crop alone; terminal timestamps stay NULL until the matching transition.
type DisputeDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CropID           uuid.UUID  `gorm:"type:uuid;index"`
	OrderID          *uuid.UUID `gorm:"type:uuid;index"`
	RaiserID         uuid.UUID  `gorm:"type:uuid;index"`
	RaiserIdentity   string
	RaiserRole       string
	Description      string
	Status           string `gorm:"index"`
	Resolution       string
	AdminNotes       string
	EscalationReason string
	ClosureReason    string
	Evidence         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ResolvedAt       *time.Time
	EscalatedAt      *time.Time
	ClosedAt         *time.Time
}

// TableName specifies the database table name for dispute entities.
func (DisputeDTO) TableName() string {
	return "disputes"
}

// fromDomain converts a dispute domain aggregate to its database representation.
func fromDomain(aggregate *dispute.Dispute) DisputeDTO {
	raiser := aggregate.Raiser()

	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return DisputeDTO{
		ID:               aggregate.ID().Bytes(),
		CropID:           aggregate.CropID().Bytes(),
		OrderID:          orderID,
		RaiserID:         raiser.ID().Bytes(),
		RaiserIdentity:   raiser.Identity(),
		RaiserRole:       raiser.Role().String(),
		Description:      aggregate.Description(),
		Status:           aggregate.Status().String(),
		Resolution:       aggregate.Resolution(),
		AdminNotes:       aggregate.AdminNotes(),
		EscalationReason: aggregate.EscalationReason(),
		ClosureReason:    aggregate.ClosureReason(),
		Evidence:         aggregate.Evidence(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		ResolvedAt:       aggregate.ResolvedAt(),
		EscalatedAt:      aggregate.EscalatedAt(),
		ClosedAt:         aggregate.ClosedAt(),
	}
}

// toDomain converts a database DTO to a dispute domain aggregate using
// RestoreDispute.
func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	cropID, err := kernel.UUIDFromBytes(dto.CropID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		orderID = &oID
	}

	raiserID, err := kernel.UUIDFromBytes(dto.RaiserID[:])
	if err != nil {
		return nil, err
	}

	raiserRole, err := kernel.RoleFromString(dto.RaiserRole)
	if err != nil {
		return nil, err
	}

	raiser, err := kernel.NewParty(raiserID, dto.RaiserIdentity, raiserRole)
	if err != nil {
		return nil, err
	}

	status, err := dispute.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return dispute.RestoreDispute(
		id,
		cropID,
		orderID,
		raiser,
		dto.Description,
		status,
		dto.Resolution,
		dto.AdminNotes,
		dto.EscalationReason,
		dto.ClosureReason,
		dto.Evidence,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.ResolvedAt,
		dto.EscalatedAt,
		dto.ClosedAt,
	)
}

package commands

import (
	"errors"
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
	"agritrace/internal/pkg/guard"
)

var ErrRegisterCropCommandIsNotConstructed = errors.New(
	"RegisterCropCommand must be created via NewRegisterCropCommand constructor",
)

// RegisterCropCommand represents a request to register a newly harvested crop.
// The actor becomes the crop's first owner and the crop enters the lifecycle
// in CREATED state with its trace token derived from these fields.
type RegisterCropCommand struct { //nolint:recvcheck //using for validation
	cropID         kernel.UUID
	actor          kernel.Party
	name           string
	quantity       float64
	harvestDate    time.Time
	location       string
	certificateRef string

	guard guard.ConstructorGuard
}

// NewRegisterCropCommand creates a command to register a new crop.
// Validates identifiers, the acting party, and the harvest details.
func NewRegisterCropCommand(
	cropID kernel.UUID,
	actor kernel.Party,
	name string,
	quantity float64,
	harvestDate time.Time,
	location string,
	certificateRef string,
) (RegisterCropCommand, error) {
	cropCommand := RegisterCropCommand{
		certificateRef: certificateRef,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cropCommand.setCropID(cropID),
		cropCommand.setActor(actor),
		cropCommand.setName(name),
		cropCommand.setQuantity(quantity),
		cropCommand.setHarvestDate(harvestDate),
		cropCommand.setLocation(location),
	); err != nil {
		return RegisterCropCommand{}, err
	}

	return cropCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCropCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCropCommandIsNotConstructed)
}

// CropID returns the unique identifier for the new crop.
func (c RegisterCropCommand) CropID() kernel.UUID {
	return c.cropID
}

// Actor returns the party registering the crop.
func (c RegisterCropCommand) Actor() kernel.Party {
	return c.actor
}

// Name returns the crop's display name.
func (c RegisterCropCommand) Name() string {
	return c.name
}

// Quantity returns the harvested quantity.
func (c RegisterCropCommand) Quantity() float64 {
	return c.quantity
}

// HarvestDate returns when the crop was harvested.
func (c RegisterCropCommand) HarvestDate() time.Time {
	return c.harvestDate
}

// Location returns where the crop was harvested.
func (c RegisterCropCommand) Location() string {
	return c.location
}

// CertificateRef returns the optional certification reference.
func (c RegisterCropCommand) CertificateRef() string {
	return c.certificateRef
}

func (c *RegisterCropCommand) setCropID(cropID kernel.UUID) error {
	if err := cropID.Validate(); err != nil {
		return err
	}

	c.cropID = cropID
	return nil
}

func (c *RegisterCropCommand) setActor(actor kernel.Party) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RegisterCropCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterCropCommand) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *RegisterCropCommand) setHarvestDate(harvestDate time.Time) error {
	if harvestDate.IsZero() {
		return errs.NewValueIsRequiredError("harvest date")
	}

	c.harvestDate = harvestDate
	return nil
}

func (c *RegisterCropCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	c.location = location
	return nil
}

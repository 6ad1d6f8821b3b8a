package commands

import (
	"errors"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/guard"
)

var ErrUnlistCropCommandIsNotConstructed = errors.New(
	"UnlistCropCommand must be created via NewUnlistCropCommand constructor",
)

// UnlistCropCommand represents a request to withdraw a listed crop from sale,
// moving it LISTED -> CREATED.
type UnlistCropCommand struct { //nolint:recvcheck //using for validation
	cropID kernel.UUID
	actor  kernel.Party

	guard guard.ConstructorGuard
}

// NewUnlistCropCommand creates a command to withdraw a crop listing.
func NewUnlistCropCommand(cropID kernel.UUID, actor kernel.Party) (UnlistCropCommand, error) {
	unlistCommand := UnlistCropCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		unlistCommand.setCropID(cropID),
		unlistCommand.setActor(actor),
	); err != nil {
		return UnlistCropCommand{}, err
	}

	return unlistCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UnlistCropCommand) Validate() error {
	return c.guard.Validate(ErrUnlistCropCommandIsNotConstructed)
}

// CropID returns the identifier of the crop to withdraw.
func (c UnlistCropCommand) CropID() kernel.UUID {
	return c.cropID
}

// Actor returns the party requesting the withdrawal.
func (c UnlistCropCommand) Actor() kernel.Party {
	return c.actor
}

func (c *UnlistCropCommand) setCropID(cropID kernel.UUID) error {
	if err := cropID.Validate(); err != nil {
		return err
	}

	c.cropID = cropID
	return nil
}

func (c *UnlistCropCommand) setActor(actor kernel.Party) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

package commands

import (
	"errors"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/guard"
)

var ErrListCropCommandIsNotConstructed = errors.New(
	"ListCropCommand must be created via NewListCropCommand constructor",
)

// ListCropCommand represents a request to open a crop for purchase,
// moving it CREATED -> LISTED.
type ListCropCommand struct { //nolint:recvcheck //using for validation
	cropID kernel.UUID
	actor  kernel.Party

	guard guard.ConstructorGuard
}

// NewListCropCommand creates a command to list a crop for sale.
func NewListCropCommand(cropID kernel.UUID, actor kernel.Party) (ListCropCommand, error) {
	listCommand := ListCropCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		listCommand.setCropID(cropID),
		listCommand.setActor(actor),
	); err != nil {
		return ListCropCommand{}, err
	}

	return listCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ListCropCommand) Validate() error {
	return c.guard.Validate(ErrListCropCommandIsNotConstructed)
}

// CropID returns the identifier of the crop to list.
func (c ListCropCommand) CropID() kernel.UUID {
	return c.cropID
}

// Actor returns the party requesting the listing.
func (c ListCropCommand) Actor() kernel.Party {
	return c.actor
}

func (c *ListCropCommand) setCropID(cropID kernel.UUID) error {
	if err := cropID.Validate(); err != nil {
		return err
	}

	c.cropID = cropID
	return nil
}

func (c *ListCropCommand) setActor(actor kernel.Party) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

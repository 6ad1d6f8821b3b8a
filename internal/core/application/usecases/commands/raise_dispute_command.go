package commands

import (
	"errors"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
	"agritrace/internal/pkg/guard"
)

var ErrRaiseDisputeCommandIsNotConstructed = errors.New(
	"RaiseDisputeCommand must be created via NewRaiseDisputeCommand constructor",
)

// RaiseDisputeCommand represents a request to open a dispute against a crop,
// optionally tied to one of its orders.
type RaiseDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID   kernel.UUID
	cropID      kernel.UUID
	orderID     *kernel.UUID
	actor       kernel.Party
	description string

	guard guard.ConstructorGuard
}

// NewRaiseDisputeCommand creates a command to open a dispute.
// orderID may be nil when the dispute concerns only the crop.
func NewRaiseDisputeCommand(
	disputeID kernel.UUID,
	cropID kernel.UUID,
	orderID *kernel.UUID,
	actor kernel.Party,
	description string,
) (RaiseDisputeCommand, error) {
	disputeCommand := RaiseDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		disputeCommand.setDisputeID(disputeID),
		disputeCommand.setCropID(cropID),
		disputeCommand.setOrderID(orderID),
		disputeCommand.setActor(actor),
		disputeCommand.setDescription(description),
	); err != nil {
		return RaiseDisputeCommand{}, err
	}

	return disputeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RaiseDisputeCommand) Validate() error {
	return c.guard.Validate(ErrRaiseDisputeCommandIsNotConstructed)
}

// DisputeID returns the unique identifier for the new dispute.
func (c RaiseDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// CropID returns the crop the dispute is raised against.
func (c RaiseDisputeCommand) CropID() kernel.UUID {
	return c.cropID
}

// OrderID returns the optional order reference, nil when absent.
func (c RaiseDisputeCommand) OrderID() *kernel.UUID {
	return c.orderID
}

// Actor returns the party raising the dispute.
func (c RaiseDisputeCommand) Actor() kernel.Party {
	return c.actor
}

// Description returns the dispute description.
func (c RaiseDisputeCommand) Description() string {
	return c.description
}

func (c *RaiseDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}

	c.disputeID = disputeID
	return nil
}

func (c *RaiseDisputeCommand) setCropID(cropID kernel.UUID) error {
	if err := cropID.Validate(); err != nil {
		return err
	}

	c.cropID = cropID
	return nil
}

func (c *RaiseDisputeCommand) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RaiseDisputeCommand) setActor(actor kernel.Party) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *RaiseDisputeCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

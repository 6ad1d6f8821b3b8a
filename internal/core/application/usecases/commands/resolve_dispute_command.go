package commands

import (
	"errors"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
	"agritrace/internal/pkg/guard"
)

var ErrResolveDisputeCommandIsNotConstructed = errors.New(
	"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
)

// ResolveDisputeCommand represents an administrator settling an open dispute.
type ResolveDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID  kernel.UUID
	actor      kernel.Party
	resolution string
	adminNotes string

	guard guard.ConstructorGuard
}

// NewResolveDisputeCommand creates a command to resolve a dispute.
// The admin notes are optional.
func NewResolveDisputeCommand(
	disputeID kernel.UUID,
	actor kernel.Party,
	resolution string,
	adminNotes string,
) (ResolveDisputeCommand, error) {
	resolveCommand := ResolveDisputeCommand{
		adminNotes: adminNotes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		resolveCommand.setDisputeID(disputeID),
		resolveCommand.setActor(actor),
		resolveCommand.setResolution(resolution),
	); err != nil {
		return ResolveDisputeCommand{}, err
	}

	return resolveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

// DisputeID returns the identifier of the dispute to resolve.
func (c ResolveDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Actor returns the party resolving the dispute.
func (c ResolveDisputeCommand) Actor() kernel.Party {
	return c.actor
}

// Resolution returns the settlement decision.
func (c ResolveDisputeCommand) Resolution() string {
	return c.resolution
}

// AdminNotes returns the administrator's notes.
func (c ResolveDisputeCommand) AdminNotes() string {
	return c.adminNotes
}

func (c *ResolveDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}

	c.disputeID = disputeID
	return nil
}

func (c *ResolveDisputeCommand) setActor(actor kernel.Party) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ResolveDisputeCommand) setResolution(resolution string) error {
	if resolution == "" {
		return errs.NewValueIsRequiredError("resolution")
	}

	c.resolution = resolution
	return nil
}

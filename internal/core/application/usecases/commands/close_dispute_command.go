package commands

import (
	"errors"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
	"agritrace/internal/pkg/guard"
)

var ErrCloseDisputeCommandIsNotConstructed = errors.New(
	"CloseDisputeCommand must be created via NewCloseDisputeCommand constructor",
)

// CloseDisputeCommand represents closing an open dispute without a
// settlement, typically because it was raised in error or settled privately.
type CloseDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID kernel.UUID
	actor     kernel.Party
	reason    string

	guard guard.ConstructorGuard
}

// NewCloseDisputeCommand creates a command to close a dispute.
func NewCloseDisputeCommand(
	disputeID kernel.UUID,
	actor kernel.Party,
	reason string,
) (CloseDisputeCommand, error) {
	closeCommand := CloseDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		closeCommand.setDisputeID(disputeID),
		closeCommand.setActor(actor),
		closeCommand.setReason(reason),
	); err != nil {
		return CloseDisputeCommand{}, err
	}

	return closeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseDisputeCommand) Validate() error {
	return c.guard.Validate(ErrCloseDisputeCommandIsNotConstructed)
}

// DisputeID returns the identifier of the dispute to close.
func (c CloseDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Actor returns the party closing the dispute.
func (c CloseDisputeCommand) Actor() kernel.Party {
	return c.actor
}

// Reason returns why the dispute is being closed.
func (c CloseDisputeCommand) Reason() string {
	return c.reason
}

func (c *CloseDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}

	c.disputeID = disputeID
	return nil
}

func (c *CloseDisputeCommand) setActor(actor kernel.Party) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CloseDisputeCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("closure reason")
	}

	c.reason = reason
	return nil
}

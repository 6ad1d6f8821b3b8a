package commands

import (
	"errors"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
	"agritrace/internal/pkg/guard"
)

var ErrEscalateDisputeCommandIsNotConstructed = errors.New(
	"EscalateDisputeCommand must be created via NewEscalateDisputeCommand constructor",
)

// EscalateDisputeCommand represents a request to escalate an open dispute
// for review outside the normal resolution path.
type EscalateDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID kernel.UUID
	actor     kernel.Party
	reason    string

	guard guard.ConstructorGuard
}

// NewEscalateDisputeCommand creates a command to escalate a dispute.
func NewEscalateDisputeCommand(
	disputeID kernel.UUID,
	actor kernel.Party,
	reason string,
) (EscalateDisputeCommand, error) {
	escalateCommand := EscalateDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		escalateCommand.setDisputeID(disputeID),
		escalateCommand.setActor(actor),
		escalateCommand.setReason(reason),
	); err != nil {
		return EscalateDisputeCommand{}, err
	}

	return escalateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c EscalateDisputeCommand) Validate() error {
	return c.guard.Validate(ErrEscalateDisputeCommandIsNotConstructed)
}

// DisputeID returns the identifier of the dispute to escalate.
func (c EscalateDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Actor returns the party escalating the dispute.
func (c EscalateDisputeCommand) Actor() kernel.Party {
	return c.actor
}

// Reason returns why the dispute is being escalated.
func (c EscalateDisputeCommand) Reason() string {
	return c.reason
}

func (c *EscalateDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}

	c.disputeID = disputeID
	return nil
}

func (c *EscalateDisputeCommand) setActor(actor kernel.Party) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *EscalateDisputeCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("escalation reason")
	}

	c.reason = reason
	return nil
}

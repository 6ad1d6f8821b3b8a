package commands

import (
	"errors"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/pkg/errs"
	"agritrace/internal/pkg/guard"
)

var ErrUpdateDisputeCommandIsNotConstructed = errors.New(
	"UpdateDisputeCommand must be created via NewUpdateDisputeCommand constructor",
)

// UpdateDisputeCommand represents the raiser amending an open dispute's
// description or evidence.
type UpdateDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID   kernel.UUID
	actor       kernel.Party
	description string
	evidence    string

	guard guard.ConstructorGuard
}

// NewUpdateDisputeCommand creates a command to amend a dispute.
// At least one of description and evidence must be non-empty.
func NewUpdateDisputeCommand(
	disputeID kernel.UUID,
	actor kernel.Party,
	description string,
	evidence string,
) (UpdateDisputeCommand, error) {
	updateCommand := UpdateDisputeCommand{
		description: description,
		evidence:    evidence,
		guard:       guard.NewConstructorGuard(),
	}

	if description == "" && evidence == "" {
		return UpdateDisputeCommand{}, errs.NewValueIsRequiredError("description or evidence")
	}

	if err := errors.Join(
		updateCommand.setDisputeID(disputeID),
		updateCommand.setActor(actor),
	); err != nil {
		return UpdateDisputeCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDisputeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDisputeCommandIsNotConstructed)
}

// DisputeID returns the identifier of the dispute to amend.
func (c UpdateDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Actor returns the party amending the dispute.
func (c UpdateDisputeCommand) Actor() kernel.Party {
	return c.actor
}

// Description returns the new description, empty to keep the current one.
func (c UpdateDisputeCommand) Description() string {
	return c.description
}

// Evidence returns the new evidence, empty to keep the current value.
func (c UpdateDisputeCommand) Evidence() string {
	return c.evidence
}

func (c *UpdateDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}

	c.disputeID = disputeID
	return nil
}

func (c *UpdateDisputeCommand) setActor(actor kernel.Party) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

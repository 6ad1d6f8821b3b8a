package commands

import (
	"errors"

	"agritrace/internal/pkg/guard"
)

var ErrAnchorLedgerCommandIsNotConstructed = errors.New(
	"AnchorLedgerCommand must be created via NewAnchorLedgerCommand constructor",
)

// AnchorLedgerCommand represents a request to checkpoint the ledger entries
// recorded since the previous anchor. Issued by the periodic anchoring job.
type AnchorLedgerCommand struct {
	guard guard.ConstructorGuard
}

// NewAnchorLedgerCommand creates a command to anchor the ledger.
func NewAnchorLedgerCommand() (AnchorLedgerCommand, error) {
	return AnchorLedgerCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AnchorLedgerCommand) Validate() error {
	return c.guard.Validate(ErrAnchorLedgerCommandIsNotConstructed)
}

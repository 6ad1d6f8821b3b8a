package commands

import (
	"context"
	"errors"
	"time"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/provenance"
	"agritrace/internal/pkg/errs"
)

// AnchorLedgerCommandHandler checkpoints the provenance ledger. Each run
// digests the entries recorded since the previous anchor and stores the
// digest, so tampering with stored entries is detectable later by
// recomputing it.
type AnchorLedgerCommandHandler struct {
	uowFactory AnchorUoWFactory
}

// NewAnchorLedgerCommandHandler creates a handler for ledger anchoring.
func NewAnchorLedgerCommandHandler(uowFactory AnchorUoWFactory) AnchorLedgerCommandHandler {
	return AnchorLedgerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the anchoring command. A run with no new entries is a
// no-op, not an error.
func (h *AnchorLedgerCommandHandler) Handle(ctx context.Context, cmd AnchorLedgerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var since time.Time
	latest, err := uow.AnchorRepository().GetLatest(ctx)
	switch {
	case err == nil:
		since = latest.CoversTo()
	case errors.Is(err, errs.ErrObjectNotFound):
		// first run, anchor everything
	default:
		return err
	}

	entries, err := uow.ProvenanceRepository().GetRecordedAfter(ctx, since)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return uow.Rollback(ctx)
	}

	anchor, err := provenance.NewAnchor(kernel.NewUUID(), entries)
	if err != nil {
		return err
	}

	if err = uow.AnchorRepository().Add(ctx, anchor); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

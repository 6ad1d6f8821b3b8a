package commands

import (
	"context"

	"agritrace/internal/pkg/errs"
)

// UpdateDisputeCommandHandler handles amending an open dispute.
type UpdateDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewUpdateDisputeCommandHandler creates a handler for dispute amendments.
func NewUpdateDisputeCommandHandler(uowFactory DisputeUoWFactory) UpdateDisputeCommandHandler {
	return UpdateDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the amendment command. Only the raiser may amend, and only
// while the dispute is still OPEN.
func (h *UpdateDisputeCommandHandler) Handle(ctx context.Context, cmd UpdateDisputeCommand) error {
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

	disputeRepo := uow.DisputeRepository()
	aggregate, err := disputeRepo.Get(ctx, cmd.DisputeID())
	if err != nil {
		return err
	}

	if !aggregate.Raiser().IsEqual(cmd.Actor()) {
		return errs.NewUnauthorizedError("actor", "only the raiser can amend a dispute")
	}

	if err = aggregate.UpdateDetails(cmd.Description(), cmd.Evidence()); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

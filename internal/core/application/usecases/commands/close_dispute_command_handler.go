package commands

import (
	"context"
	"fmt"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/ports"
	"agritrace/internal/pkg/errs"
)

// CloseDisputeCommandHandler handles closing a dispute without settlement.
type CloseDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
	notifier   ports.Notifier
}

// NewCloseDisputeCommandHandler creates a handler for dispute closure.
func NewCloseDisputeCommandHandler(uowFactory DisputeUoWFactory, notifier ports.Notifier) CloseDisputeCommandHandler {
	return CloseDisputeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the closure command. Only the raiser or an administrator
// may close a dispute.
func (h *CloseDisputeCommandHandler) Handle(ctx context.Context, cmd CloseDisputeCommand) error {
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

	if !aggregate.Raiser().IsEqual(cmd.Actor()) && cmd.Actor().Role() != kernel.RoleAdmin {
		return errs.NewUnauthorizedError("actor", "only the raiser or an administrator can close a dispute")
	}

	if err = aggregate.Close(cmd.Reason()); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Recipient: aggregate.Raiser(),
		Subject:   "dispute closed",
		Body:      fmt.Sprintf("dispute %s was closed: %s", aggregate.ID(), aggregate.ClosureReason()),
	})

	return nil
}

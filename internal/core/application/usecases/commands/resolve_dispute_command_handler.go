package commands

import (
	"context"
	"fmt"

	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/ports"
	"agritrace/internal/pkg/errs"
)

// ResolveDisputeCommandHandler handles administrators settling disputes.
type ResolveDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
	notifier   ports.Notifier
}

// NewResolveDisputeCommandHandler creates a handler for dispute resolution.
func NewResolveDisputeCommandHandler(uowFactory DisputeUoWFactory, notifier ports.Notifier) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the resolution command. Only administrators resolve
// disputes; the dispute must still be OPEN.
func (h *ResolveDisputeCommandHandler) Handle(ctx context.Context, cmd ResolveDisputeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != kernel.RoleAdmin {
		return errs.NewUnauthorizedError("actor", "only administrators can resolve disputes")
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

	if err = aggregate.Resolve(cmd.Resolution(), cmd.AdminNotes()); err != nil {
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
		Subject:   "dispute resolved",
		Body:      fmt.Sprintf("dispute %s was resolved: %s", aggregate.ID(), aggregate.Resolution()),
	})

	return nil
}

package commands

import (
	"context"
	"fmt"

	"agritrace/internal/core/ports"
	"agritrace/internal/pkg/errs"
)

// EscalateDisputeCommandHandler handles dispute escalation by any party
// involved in the dispute.
type EscalateDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
	notifier   ports.Notifier
}

// NewEscalateDisputeCommandHandler creates a handler for dispute escalation.
func NewEscalateDisputeCommandHandler(uowFactory DisputeUoWFactory, notifier ports.Notifier) EscalateDisputeCommandHandler {
	return EscalateDisputeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the escalation command. The actor must be involved in the
// dispute: its raiser, the crop's owner, or a party to the referenced order.
func (h *EscalateDisputeCommandHandler) Handle(ctx context.Context, cmd EscalateDisputeCommand) error {
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

	accessible, err := disputeAccessibleBy(ctx, uow, aggregate, cmd.Actor())
	if err != nil {
		return err
	}
	if !accessible {
		return errs.NewUnauthorizedError("actor", "not involved in this dispute")
	}

	if err = aggregate.Escalate(cmd.Reason()); err != nil {
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
		Subject:   "dispute escalated",
		Body:      fmt.Sprintf("dispute %s was escalated: %s", aggregate.ID(), aggregate.EscalationReason()),
	})

	return nil
}

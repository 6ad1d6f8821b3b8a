package commands

import (
	"context"
	"fmt"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/provenance"
	"agritrace/internal/core/ports"
	"agritrace/internal/pkg/errs"
)

// AcceptOrderCommandHandler handles the seller's confirmation of an order.
// In one transaction the order moves to ACCEPTED, the crop moves
// LISTED -> ORDERED, and the ledger records the state change.
type AcceptOrderCommandHandler struct {
	uowFactory TradeUoWFactory
	notifier   ports.Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory TradeUoWFactory, notifier ports.Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command. Only the order's seller may accept.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsSeller(cmd.Actor()) {
		return errs.NewUnauthorizedError("actor", "only the seller can accept an order")
	}

	if err = aggregate.Accept(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	cropRepo := uow.CropRepository()
	cropAggregate, err := cropRepo.Get(ctx, aggregate.CropID())
	if err != nil {
		return err
	}

	fromState := cropAggregate.State()
	if err = cropAggregate.TransitionTo(crop.StateOrdered); err != nil {
		return err
	}

	if err = cropRepo.Update(ctx, cropAggregate); err != nil {
		return err
	}

	entry, err := provenance.NewEntry(
		kernel.NewUUID(), cropAggregate.ID(), provenance.ActionStateChange,
		fromState, cropAggregate.State(), cmd.Actor())
	if err != nil {
		return err
	}

	if err = uow.ProvenanceRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Recipient: aggregate.Buyer(),
		Subject:   "order accepted",
		Body:      fmt.Sprintf("order %s was accepted by the seller", aggregate.ID()),
	})

	return nil
}

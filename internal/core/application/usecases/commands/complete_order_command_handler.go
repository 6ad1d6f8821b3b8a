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

// CompleteOrderCommandHandler handles the buyer's confirmation of delivery.
// In one transaction it moves the order SHIPPED -> COMPLETED, moves the crop
// SHIPPED -> DELIVERED, reassigns the crop's owner to the buyer, and records
// the ownership-transfer ledger entry. Either all of it lands or none of it
// does.
type CompleteOrderCommandHandler struct {
	uowFactory TradeUoWFactory
	notifier   ports.Notifier
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory TradeUoWFactory, notifier ports.Notifier) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the completion command. Only the order's buyer may
// complete it.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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
	orderAggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !orderAggregate.IsBuyer(cmd.Actor()) {
		return errs.NewUnauthorizedError("actor", "only the buyer can complete an order")
	}

	if err = orderAggregate.Complete(); err != nil {
		return err
	}

	cropRepo := uow.CropRepository()
	cropAggregate, err := cropRepo.Get(ctx, orderAggregate.CropID())
	if err != nil {
		return err
	}

	previousOwner := cropAggregate.Owner()
	fromState := cropAggregate.State()

	if err = cropAggregate.TransitionTo(crop.StateDelivered); err != nil {
		return err
	}

	if err = cropAggregate.TransferOwnership(orderAggregate.Buyer()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = cropRepo.Update(ctx, cropAggregate); err != nil {
		return err
	}

	entry, err := provenance.NewEntry(
		kernel.NewUUID(), cropAggregate.ID(), provenance.ActionOwnershipTransfer,
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
		Recipient: previousOwner,
		Subject:   "order completed",
		Body:      fmt.Sprintf("order %s was completed; ownership of crop %s moved to the buyer",
			orderAggregate.ID(), cropAggregate.Name()),
	})

	return nil
}

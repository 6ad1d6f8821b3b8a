package commands

import (
	"context"
	"fmt"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/order"
	"agritrace/internal/core/domain/model/provenance"
	"agritrace/internal/core/ports"
	"agritrace/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation before shipment.
// The crop is returned to LISTED in the same transaction, with a ledger
// entry recording the reversal.
type CancelOrderCommandHandler struct {
	uowFactory TradeUoWFactory
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory TradeUoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command. The buyer may cancel a PLACED
// order; once the seller has accepted, either party may cancel. A shipped
// order can no longer be cancelled.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = h.authorizeCancel(orderAggregate, cmd.Actor()); err != nil {
		return err
	}

	wasAccepted := orderAggregate.Status() == order.StatusAccepted

	if err = orderAggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	// Only this order's acceptance moved the crop out of LISTED; a
	// cancelled PLACED order leaves the crop untouched even when another
	// accepted order holds it in ORDERED.
	if wasAccepted {
		cropRepo := uow.CropRepository()
		cropAggregate, err := cropRepo.Get(ctx, orderAggregate.CropID())
		if err != nil {
			return err
		}

		fromState := cropAggregate.State()
		if err = cropAggregate.TransitionTo(crop.StateListed); err != nil {
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
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recipient := orderAggregate.Seller()
	if orderAggregate.IsSeller(cmd.Actor()) {
		recipient = orderAggregate.Buyer()
	}

	h.notifier.Notify(ctx, ports.Notification{
		Recipient: recipient,
		Subject:   "order cancelled",
		Body:      fmt.Sprintf("order %s was cancelled", orderAggregate.ID()),
	})

	return nil
}

func (h *CancelOrderCommandHandler) authorizeCancel(aggregate *order.Order, actor kernel.Party) error {
	switch aggregate.Status() {
	case order.StatusPlaced:
		if !aggregate.IsBuyer(actor) {
			return errs.NewUnauthorizedError("actor", "only the buyer can cancel a placed order")
		}
	case order.StatusAccepted:
		if !aggregate.IsBuyer(actor) && !aggregate.IsSeller(actor) {
			return errs.NewUnauthorizedError("actor", "only the buyer or seller can cancel an accepted order")
		}
	default:
		// Cancel() rejects every other status with the transition error,
		// which carries more context than an authorization failure.
	}

	return nil
}

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

// ShipOrderCommandHandler handles marking an accepted order as shipped.
// The order and its crop change state in the same transaction so the two
// lifecycles never drift apart.
type ShipOrderCommandHandler struct {
	uowFactory TradeUoWFactory
	notifier   ports.Notifier
}

// NewShipOrderCommandHandler creates a handler for order shipping.
func NewShipOrderCommandHandler(uowFactory TradeUoWFactory, notifier ports.Notifier) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the shipping command. Only the order's seller may ship.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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

	if !orderAggregate.IsSeller(cmd.Actor()) {
		return errs.NewUnauthorizedError("actor", "only the seller can ship an order")
	}

	if err = orderAggregate.Ship(); err != nil {
		return err
	}

	cropRepo := uow.CropRepository()
	cropAggregate, err := cropRepo.Get(ctx, orderAggregate.CropID())
	if err != nil {
		return err
	}

	fromState := cropAggregate.State()
	if err = cropAggregate.TransitionTo(crop.StateShipped); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
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
		Recipient: orderAggregate.Buyer(),
		Subject:   "order shipped",
		Body:      fmt.Sprintf("order %s is on its way to %s", orderAggregate.ID(), orderAggregate.DeliveryAddress()),
	})

	return nil
}

package commands

import (
	"context"
	"fmt"

	"agritrace/internal/core/domain/model/dispute"
	"agritrace/internal/core/ports"
	"agritrace/internal/pkg/errs"
)

// RaiseDisputeCommandHandler handles opening a dispute. The referenced crop
// must exist; when an order is referenced it must belong to that crop.
type RaiseDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
	notifier   ports.Notifier
}

// NewRaiseDisputeCommandHandler creates a handler for raising disputes.
func NewRaiseDisputeCommandHandler(uowFactory DisputeUoWFactory, notifier ports.Notifier) RaiseDisputeCommandHandler {
	return RaiseDisputeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the raise-dispute command.
func (h *RaiseDisputeCommandHandler) Handle(ctx context.Context, cmd RaiseDisputeCommand) error {
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

	cropAggregate, err := uow.CropRepository().Get(ctx, cmd.CropID())
	if err != nil {
		return err
	}

	if cmd.OrderID() != nil {
		orderAggregate, err := uow.OrderRepository().Get(ctx, *cmd.OrderID())
		if err != nil {
			return err
		}
		if !orderAggregate.CropID().IsEqual(cmd.CropID()) {
			return errs.NewValueIsInvalidError("order id")
		}
	}

	newDispute, err := dispute.NewDispute(
		cmd.DisputeID(), cmd.CropID(), cmd.OrderID(), cmd.Actor(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.DisputeRepository().Add(ctx, newDispute); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Recipient: cropAggregate.Owner(),
		Subject:   "dispute raised",
		Body:      fmt.Sprintf("a dispute was raised against crop %s", cropAggregate.Name()),
	})

	return nil
}

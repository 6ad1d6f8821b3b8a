package commands

import (
	"context"
	"fmt"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/order"
	"agritrace/internal/core/ports"
	"agritrace/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for placing an order
// against a listed crop. The crop stays LISTED until the seller accepts;
// placement only creates the order in PLACED status.
type PlaceOrderCommandHandler struct {
	uowFactory TradeUoWFactory
	notifier   ports.Notifier
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory TradeUoWFactory, notifier ports.Notifier) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order placement command.
// The crop must be LISTED and the requested quantity must not exceed the
// crop's quantity. The crop's owner becomes the order's seller; a buyer
// cannot order their own crop.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	cropRepo := uow.CropRepository()
	cropAggregate, err := cropRepo.Get(ctx, cmd.CropID())
	if err != nil {
		return err
	}

	if cropAggregate.State() != crop.StateListed {
		return errs.NewInvalidStateTransitionError(
			"crop", cropAggregate.State().String(), crop.StateOrdered.String())
	}

	if cmd.Quantity() > cropAggregate.Quantity() {
		return errs.NewValueIsOutOfRangeError("quantity", cmd.Quantity(), 0, cropAggregate.Quantity())
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cropAggregate.ID(),
		cmd.Buyer(),
		cropAggregate.Owner(),
		cmd.Quantity(),
		cmd.Price(),
		cmd.DeliveryAddress(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Recipient: newOrder.Seller(),
		Subject:   "order placed",
		Body:      fmt.Sprintf("order %s placed for crop %s", newOrder.ID(), cropAggregate.Name()),
	})

	return nil
}

package commands

import (
	"context"
	"fmt"

	"agritrace/internal/core/ports"
	"agritrace/internal/pkg/errs"
)

// RejectOrderCommandHandler handles a seller turning down a placed order.
type RejectOrderCommandHandler struct {
	uowFactory TradeUoWFactory
	notifier   ports.Notifier
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory TradeUoWFactory, notifier ports.Notifier) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the rejection command. Only the order's seller may reject,
// and only while the order is PLACED.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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
		return errs.NewUnauthorizedError("actor", "only the seller can reject an order")
	}

	if err = orderAggregate.Reject(cmd.Reason()); err != nil {
		return err
	}

	// Rejection applies while the order is PLACED, before acceptance
	// moves the crop out of LISTED, so the crop never needs reverting.
	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, ports.Notification{
		Recipient: orderAggregate.Buyer(),
		Subject:   "order rejected",
		Body:      fmt.Sprintf("order %s was rejected: %s", orderAggregate.ID(), orderAggregate.RejectionReason()),
	})

	return nil
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/provenance"
	"agritrace/internal/pkg/errs"
)

// UnlistCropCommandHandler handles withdrawing a crop from sale.
type UnlistCropCommandHandler struct {
	uowFactory CropUoWFactory
}

// NewUnlistCropCommandHandler creates a handler for crop withdrawal operations.
func NewUnlistCropCommandHandler(uowFactory CropUoWFactory) UnlistCropCommandHandler {
	return UnlistCropCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command. Only the crop's current owner may
// withdraw it, and only while it is LISTED with no active order.
func (h *UnlistCropCommandHandler) Handle(ctx context.Context, cmd UnlistCropCommand) error {
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
	aggregate, err := cropRepo.Get(ctx, cmd.CropID())
	if err != nil {
		return err
	}

	if !aggregate.Owner().IsEqual(cmd.Actor()) {
		return errs.NewUnauthorizedError("actor", "only the crop owner can withdraw it")
	}

	_, err = uow.OrderRepository().GetActiveByCropID(ctx, aggregate.ID())
	if err == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"crop", fmt.Errorf("crop %s has an active order", aggregate.ID()))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	fromState := aggregate.State()
	if err = aggregate.TransitionTo(crop.StateCreated); err != nil {
		return err
	}

	if err = cropRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := provenance.NewEntry(
		kernel.NewUUID(), aggregate.ID(), provenance.ActionStateChange,
		fromState, aggregate.State(), cmd.Actor())
	if err != nil {
		return err
	}

	if err = uow.ProvenanceRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

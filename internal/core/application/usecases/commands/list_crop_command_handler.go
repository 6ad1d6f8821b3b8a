package commands

import (
	"context"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/provenance"
	"agritrace/internal/pkg/errs"
)

// ListCropCommandHandler handles opening a crop for purchase.
type ListCropCommandHandler struct {
	uowFactory CropUoWFactory
}

// NewListCropCommandHandler creates a handler for crop listing operations.
func NewListCropCommandHandler(uowFactory CropUoWFactory) ListCropCommandHandler {
	return ListCropCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing command. Only the crop's current owner may
// list it. The CREATED -> LISTED transition and its ledger entry are
// persisted atomically.
func (h *ListCropCommandHandler) Handle(ctx context.Context, cmd ListCropCommand) error {
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
		return errs.NewUnauthorizedError("actor", "only the crop owner can list it")
	}

	fromState := aggregate.State()
	if err = aggregate.TransitionTo(crop.StateListed); err != nil {
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

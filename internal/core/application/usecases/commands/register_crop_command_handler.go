package commands

import (
	"context"

	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/provenance"
	"agritrace/internal/core/domain/services"
	"agritrace/internal/pkg/errs"
)

// RegisterCropCommandHandler handles the business logic for crop registration.
// Derives the crop's public trace token, creates the aggregate in CREATED
// state, and records the opening ledger entry in the same transaction.
type RegisterCropCommandHandler struct {
	uowFactory     CropUoWFactory
	tokenGenerator services.TraceTokenGenerator
}

// NewRegisterCropCommandHandler creates a handler for crop registration.
// Requires a CropUoWFactory for transactional persistence.
func NewRegisterCropCommandHandler(
	uowFactory CropUoWFactory,
	tokenGenerator services.TraceTokenGenerator,
) RegisterCropCommandHandler {
	return RegisterCropCommandHandler{
		uowFactory:     uowFactory,
		tokenGenerator: tokenGenerator,
	}
}

// Handle processes the crop registration command.
// Only farmers register crops. The trace token is derived once here and
// never changes afterwards.
func (h *RegisterCropCommandHandler) Handle(ctx context.Context, cmd RegisterCropCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != kernel.RoleFarmer {
		return errs.NewUnauthorizedError("actor", "only farmers can register crops")
	}

	traceToken, err := h.tokenGenerator.Generate(
		cmd.CropID(), cmd.Name(), cmd.HarvestDate(), cmd.Location(), cmd.Actor())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newCrop, err := crop.NewCrop(
		cmd.CropID(),
		cmd.Name(),
		cmd.Quantity(),
		cmd.HarvestDate(),
		cmd.Location(),
		cmd.CertificateRef(),
		traceToken,
		cmd.Actor(),
	)
	if err != nil {
		return err
	}

	if err = uow.CropRepository().Add(ctx, newCrop); err != nil {
		return err
	}

	entry, err := provenance.NewEntry(
		kernel.NewUUID(), newCrop.ID(), provenance.ActionCreated,
		crop.StateUnknown, newCrop.State(), cmd.Actor())
	if err != nil {
		return err
	}

	if err = uow.ProvenanceRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

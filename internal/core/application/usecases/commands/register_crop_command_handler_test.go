package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agritrace/internal/core/application/usecases/commands"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/services"
	"agritrace/internal/pkg/errs"
)

func newRegisterCropCommand(t *testing.T, actor kernel.Party) commands.RegisterCropCommand {
	t.Helper()

	cmd, err := commands.NewRegisterCropCommand(
		kernel.NewUUID(), actor, "Basmati Rice", 250,
		time.Now().UTC().AddDate(0, -1, 0), "Punjab", "CERT-77")
	require.NoError(t, err)
	return cmd
}

func TestRegisterCropCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	farmer := newTestParty(t, "farmer@greenfields.example", kernel.RoleFarmer)
	cmd := newRegisterCropCommand(t, farmer)

	cropRepo := new(MockCropRepository)
	ledger := new(MockProvenanceRepository)
	uow := new(MockCropUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CropRepository").Return(cropRepo).Once(),
		cropRepo.On("Add", mock.Anything, mock.AnythingOfType("*crop.Crop")).Return(nil).Once(),
		uow.On("ProvenanceRepository").Return(ledger).Once(),
		ledger.On("Add", mock.Anything, mock.AnythingOfType("*provenance.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCropUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCropCommandHandler(factory, services.NewTraceTokenGenerator())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	cropRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterCropCommandHandler_Handle_NonFarmer(t *testing.T) {
	ctx := t.Context()
	retailer := newTestParty(t, "retailer@fresh.example", kernel.RoleRetailer)
	cmd := newRegisterCropCommand(t, retailer)

	factory := new(MockCropUoWFactory)
	h := commands.NewRegisterCropCommandHandler(factory, services.NewTraceTokenGenerator())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterCropCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterCropCommand{} // not constructed properly
	factory := new(MockCropUoWFactory)
	h := commands.NewRegisterCropCommandHandler(factory, services.NewTraceTokenGenerator())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRegisterCropCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	farmer := newTestParty(t, "farmer@greenfields.example", kernel.RoleFarmer)
	cmd := newRegisterCropCommand(t, farmer)

	cropRepo := new(MockCropRepository)
	uow := new(MockCropUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CropRepository").Return(cropRepo).Once(),
		cropRepo.On("Add", mock.Anything, mock.AnythingOfType("*crop.Crop")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCropUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCropCommandHandler(factory, services.NewTraceTokenGenerator())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	cropRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

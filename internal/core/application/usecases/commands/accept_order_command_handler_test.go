package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agritrace/internal/core/application/usecases/commands"
	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/order"
	"agritrace/internal/pkg/errs"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	farmer := newTestParty(t, "farmer@greenfields.example", kernel.RoleFarmer)
	retailer := newTestParty(t, "retailer@fresh.example", kernel.RoleRetailer)
	listedCrop := newCropInState(t, farmer, crop.StateListed)
	placedOrder := newOrderInStatus(t, listedCrop.ID(), retailer, farmer, order.StatusPlaced)
	cmd, err := commands.NewAcceptOrderCommand(placedOrder.ID(), farmer)
	require.NoError(t, err)

	cropRepo := new(MockCropRepository)
	orderRepo := new(MockOrderRepository)
	ledger := new(MockProvenanceRepository)
	uow := new(MockTradeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, placedOrder.ID()).Return(placedOrder, nil).Once(),
		orderRepo.On("Update", mock.Anything, placedOrder).Return(nil).Once(),
		uow.On("CropRepository").Return(cropRepo).Once(),
		cropRepo.On("Get", mock.Anything, listedCrop.ID()).Return(listedCrop, nil).Once(),
		cropRepo.On("Update", mock.Anything, listedCrop).Return(nil).Once(),
		uow.On("ProvenanceRepository").Return(ledger).Once(),
		ledger.On("Add", mock.Anything, mock.AnythingOfType("*provenance.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTradeUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(SpyNotifier)
	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusAccepted, placedOrder.Status())
	require.Equal(t, crop.StateOrdered, listedCrop.State())
	require.Len(t, notifier.notifications, 1)
	require.True(t, notifier.notifications[0].Recipient.IsEqual(retailer))
	cropRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	ledger.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_OnlySellerAccepts(t *testing.T) {
	ctx := t.Context()
	farmer := newTestParty(t, "farmer@greenfields.example", kernel.RoleFarmer)
	retailer := newTestParty(t, "retailer@fresh.example", kernel.RoleRetailer)
	listedCrop := newCropInState(t, farmer, crop.StateListed)
	placedOrder := newOrderInStatus(t, listedCrop.ID(), retailer, farmer, order.StatusPlaced)
	cmd, err := commands.NewAcceptOrderCommand(placedOrder.ID(), retailer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockTradeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, placedOrder.ID()).Return(placedOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTradeUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(SpyNotifier)
	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Equal(t, order.StatusPlaced, placedOrder.Status())
	require.Empty(t, notifier.notifications)
}

func TestAcceptOrderCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	farmer := newTestParty(t, "farmer@greenfields.example", kernel.RoleFarmer)
	retailer := newTestParty(t, "retailer@fresh.example", kernel.RoleRetailer)
	listedCrop := newCropInState(t, farmer, crop.StateListed)
	acceptedOrder := newOrderInStatus(t, listedCrop.ID(), retailer, farmer, order.StatusAccepted)
	cmd, err := commands.NewAcceptOrderCommand(acceptedOrder.ID(), farmer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockTradeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, acceptedOrder.ID()).Return(acceptedOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTradeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, new(SpyNotifier))
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	require.Equal(t, crop.StateListed, listedCrop.State())
}

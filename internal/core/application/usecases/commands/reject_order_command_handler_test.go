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

func newRejectOrderCommand(t *testing.T, orderID kernel.UUID, actor kernel.Party) commands.RejectOrderCommand {
	t.Helper()

	cmd, err := commands.NewRejectOrderCommand(orderID, actor, "quantity no longer available")
	require.NoError(t, err)
	return cmd
}

func TestRejectOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	farmer := newTestParty(t, "farmer@greenfields.example", kernel.RoleFarmer)
	retailer := newTestParty(t, "retailer@fresh.example", kernel.RoleRetailer)
	listedCrop := newCropInState(t, farmer, crop.StateListed)
	placedOrder := newOrderInStatus(t, listedCrop.ID(), retailer, farmer, order.StatusPlaced)
	cmd := newRejectOrderCommand(t, placedOrder.ID(), farmer)

	orderRepo := new(MockOrderRepository)
	uow := new(MockTradeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, placedOrder.ID()).Return(placedOrder, nil).Once(),
		orderRepo.On("Update", mock.Anything, placedOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTradeUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(SpyNotifier)
	h := commands.NewRejectOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusCancelled, placedOrder.Status())
	require.Equal(t, "quantity no longer available", placedOrder.RejectionReason())
	require.Len(t, notifier.notifications, 1)
	require.True(t, notifier.notifications[0].Recipient.IsEqual(retailer))
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRejectOrderCommandHandler_Handle_CropHeldByAnotherOrderStaysOrdered(t *testing.T) {
	// A second order against the same crop was accepted, holding the crop
	// in ORDERED; rejecting this PLACED order must not touch the crop.
	ctx := t.Context()
	farmer := newTestParty(t, "farmer@greenfields.example", kernel.RoleFarmer)
	retailer := newTestParty(t, "retailer@fresh.example", kernel.RoleRetailer)
	orderedCrop := newCropInState(t, farmer, crop.StateOrdered)
	placedOrder := newOrderInStatus(t, orderedCrop.ID(), retailer, farmer, order.StatusPlaced)
	cmd := newRejectOrderCommand(t, placedOrder.ID(), farmer)

	orderRepo := new(MockOrderRepository)
	uow := new(MockTradeUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, placedOrder.ID()).Return(placedOrder, nil).Once(),
		orderRepo.On("Update", mock.Anything, placedOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTradeUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRejectOrderCommandHandler(factory, new(SpyNotifier))
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.StatusCancelled, placedOrder.Status())
	require.Equal(t, crop.StateOrdered, orderedCrop.State())
	uow.AssertExpectations(t)
}

func TestRejectOrderCommandHandler_Handle_OnlySellerRejects(t *testing.T) {
	ctx := t.Context()
	farmer := newTestParty(t, "farmer@greenfields.example", kernel.RoleFarmer)
	retailer := newTestParty(t, "retailer@fresh.example", kernel.RoleRetailer)
	listedCrop := newCropInState(t, farmer, crop.StateListed)
	placedOrder := newOrderInStatus(t, listedCrop.ID(), retailer, farmer, order.StatusPlaced)
	cmd := newRejectOrderCommand(t, placedOrder.ID(), retailer)

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
	h := commands.NewRejectOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.Equal(t, order.StatusPlaced, placedOrder.Status())
	require.Empty(t, notifier.notifications)
}

func TestRejectOrderCommandHandler_Handle_AcceptedNotRejectable(t *testing.T) {
	ctx := t.Context()
	farmer := newTestParty(t, "farmer@greenfields.example", kernel.RoleFarmer)
	retailer := newTestParty(t, "retailer@fresh.example", kernel.RoleRetailer)
	orderedCrop := newCropInState(t, farmer, crop.StateOrdered)
	acceptedOrder := newOrderInStatus(t, orderedCrop.ID(), retailer, farmer, order.StatusAccepted)
	cmd := newRejectOrderCommand(t, acceptedOrder.ID(), farmer)

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

	h := commands.NewRejectOrderCommandHandler(factory, new(SpyNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	require.Equal(t, order.StatusAccepted, acceptedOrder.Status())
	require.Equal(t, crop.StateOrdered, orderedCrop.State())
}

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agritrace/internal/core/application/usecases/commands"
	"agritrace/internal/core/domain/model/crop"
	"agritrace/internal/core/domain/model/dispute"
	"agritrace/internal/core/domain/model/kernel"
	"agritrace/internal/core/domain/model/order"
	"agritrace/internal/core/domain/model/provenance"
	"agritrace/internal/core/ports"
)

const testTraceToken = "4c7d0a9e2f1b8d6c3a5e0f9d8c7b6a5f4e3d2c1b0a9f8e7d6c5b4a3f2e1d0c9b"

func newTestParty(t *testing.T, identity string, role kernel.Role) kernel.Party {
	t.Helper()

	party, err := kernel.NewParty(kernel.NewUUID(), identity, role)
	require.NoError(t, err)
	return party
}

func newCropInState(t *testing.T, owner kernel.Party, target crop.State) *crop.Crop {
	t.Helper()

	aggregate, err := crop.NewCrop(
		kernel.NewUUID(), "Basmati Rice", 250, time.Now().UTC().AddDate(0, -1, 0),
		"Punjab", "", testTraceToken, owner)
	require.NoError(t, err)

	path := map[crop.State][]crop.State{
		crop.StateCreated:   {},
		crop.StateListed:    {crop.StateListed},
		crop.StateOrdered:   {crop.StateListed, crop.StateOrdered},
		crop.StateShipped:   {crop.StateListed, crop.StateOrdered, crop.StateShipped},
		crop.StateDelivered: {crop.StateListed, crop.StateOrdered, crop.StateShipped, crop.StateDelivered},
	}

	for _, step := range path[target] {
		require.NoError(t, aggregate.TransitionTo(step))
	}

	return aggregate
}

func newOrderInStatus(t *testing.T, cropID kernel.UUID, buyer, seller kernel.Party, target order.Status) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), cropID, buyer, seller, 100, 42.5, "12 Market Road", "")
	require.NoError(t, err)

	switch target {
	case order.StatusAccepted:
		require.NoError(t, aggregate.Accept())
	case order.StatusShipped:
		require.NoError(t, aggregate.Accept())
		require.NoError(t, aggregate.Ship())
	case order.StatusPlaced:
	default:
		t.Fatalf("unsupported target status %s", target)
	}

	return aggregate
}

type MockCropRepository struct{ mock.Mock }

func (m *MockCropRepository) Add(ctx context.Context, aggregate *crop.Crop) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCropRepository) Update(ctx context.Context, aggregate *crop.Crop) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCropRepository) Get(ctx context.Context, id kernel.UUID) (*crop.Crop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crop.Crop), args.Error(1)
}

func (m *MockCropRepository) GetByTraceToken(ctx context.Context, traceToken string) (*crop.Crop, error) {
	args := m.Called(ctx, traceToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crop.Crop), args.Error(1)
}

func (m *MockCropRepository) GetByOwner(ctx context.Context, ownerID kernel.UUID) ([]*crop.Crop, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*crop.Crop), args.Error(1)
}

func (m *MockCropRepository) GetAllListed(ctx context.Context) ([]*crop.Crop, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*crop.Crop), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByParty(ctx context.Context, partyID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByCropID(ctx context.Context, cropID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, cropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockProvenanceRepository struct{ mock.Mock }

func (m *MockProvenanceRepository) Add(ctx context.Context, entry *provenance.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockProvenanceRepository) GetByCropID(ctx context.Context, cropID kernel.UUID) ([]*provenance.Entry, error) {
	args := m.Called(ctx, cropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*provenance.Entry), args.Error(1)
}

func (m *MockProvenanceRepository) GetRecordedAfter(ctx context.Context, after time.Time) ([]*provenance.Entry, error) {
	args := m.Called(ctx, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*provenance.Entry), args.Error(1)
}

type MockDisputeRepository struct{ mock.Mock }

func (m *MockDisputeRepository) Add(ctx context.Context, aggregate *dispute.Dispute) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDisputeRepository) Update(ctx context.Context, aggregate *dispute.Dispute) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDisputeRepository) Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) GetByCropID(ctx context.Context, cropID kernel.UUID) ([]*dispute.Dispute, error) {
	args := m.Called(ctx, cropID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dispute.Dispute), args.Error(1)
}

func (m *MockDisputeRepository) GetByRaiser(ctx context.Context, raiserID kernel.UUID) ([]*dispute.Dispute, error) {
	args := m.Called(ctx, raiserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dispute.Dispute), args.Error(1)
}

type MockAnchorRepository struct{ mock.Mock }

func (m *MockAnchorRepository) Add(ctx context.Context, anchor *provenance.Anchor) error {
	args := m.Called(ctx, anchor)
	return args.Error(0)
}

func (m *MockAnchorRepository) GetLatest(ctx context.Context) (*provenance.Anchor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provenance.Anchor), args.Error(1)
}

type MockCropUoW struct{ mock.Mock }

func (m *MockCropUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCropUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCropUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCropUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCropUoW) CropRepository() ports.CropRepository {
	args := m.Called()
	return args.Get(0).(ports.CropRepository)
}

func (m *MockCropUoW) ProvenanceRepository() ports.ProvenanceRepository {
	args := m.Called()
	return args.Get(0).(ports.ProvenanceRepository)
}

type MockCropUoWFactory struct{ mock.Mock }

func (m *MockCropUoWFactory) Create() commands.CropUoW {
	args := m.Called()
	return args.Get(0).(commands.CropUoW)
}

type MockTradeUoW struct{ mock.Mock }

func (m *MockTradeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTradeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTradeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTradeUoW) CropRepository() ports.CropRepository {
	args := m.Called()
	return args.Get(0).(ports.CropRepository)
}

func (m *MockTradeUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockTradeUoW) ProvenanceRepository() ports.ProvenanceRepository {
	args := m.Called()
	return args.Get(0).(ports.ProvenanceRepository)
}

type MockTradeUoWFactory struct{ mock.Mock }

func (m *MockTradeUoWFactory) Create() commands.TradeUoW {
	args := m.Called()
	return args.Get(0).(commands.TradeUoW)
}

type MockDisputeUoW struct{ mock.Mock }

func (m *MockDisputeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDisputeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDisputeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDisputeUoW) DisputeRepository() ports.DisputeRepository {
	args := m.Called()
	return args.Get(0).(ports.DisputeRepository)
}

func (m *MockDisputeUoW) CropRepository() ports.CropRepository {
	args := m.Called()
	return args.Get(0).(ports.CropRepository)
}

func (m *MockDisputeUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockDisputeUoWFactory struct{ mock.Mock }

func (m *MockDisputeUoWFactory) Create() commands.DisputeUoW {
	args := m.Called()
	return args.Get(0).(commands.DisputeUoW)
}

type MockAnchorUoW struct{ mock.Mock }

func (m *MockAnchorUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAnchorUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAnchorUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAnchorUoW) ProvenanceRepository() ports.ProvenanceRepository {
	args := m.Called()
	return args.Get(0).(ports.ProvenanceRepository)
}

func (m *MockAnchorUoW) AnchorRepository() ports.AnchorRepository {
	args := m.Called()
	return args.Get(0).(ports.AnchorRepository)
}

type MockAnchorUoWFactory struct{ mock.Mock }

func (m *MockAnchorUoWFactory) Create() commands.AnchorUoW {
	args := m.Called()
	return args.Get(0).(commands.AnchorUoW)
}

// SpyNotifier records notifications without asserting on them up front.
type SpyNotifier struct {
	notifications []ports.Notification
}

func (s *SpyNotifier) Notify(_ context.Context, notification ports.Notification) {
	s.notifications = append(s.notifications, notification)
}

package cmd

import (
	"log/slog"

	httpin "agritrace/internal/adapters/in/http"
	"agritrace/internal/adapters/out/notify"
	"agritrace/internal/adapters/out/postgres"
	"agritrace/internal/core/application/usecases/commands"
	"agritrace/internal/core/application/usecases/queries"
	"agritrace/internal/core/domain/services"
	"agritrace/internal/core/ports"
	"agritrace/internal/jobs"
	"agritrace/internal/platform/metrics"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are cheap
// value types; each Create* call builds a fresh one over the shared
// infrastructure.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph over the given database handle.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewSlogNotifier(logger),
		metrics:    metrics.New(),
		logger:     logger,
	}
}

func (c *CompositionRoot) cropUoWFactory() commands.CropUoWFactory {
	return FuncCropUoWFactory(func() commands.CropUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tradeUoWFactory() commands.TradeUoWFactory {
	return FuncTradeUoWFactory(func() commands.TradeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) disputeUoWFactory() commands.DisputeUoWFactory {
	return FuncDisputeUoWFactory(func() commands.DisputeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) anchorUoWFactory() commands.AnchorUoWFactory {
	return FuncAnchorUoWFactory(func() commands.AnchorUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterCropCommandHandler() commands.RegisterCropCommandHandler {
	return commands.NewRegisterCropCommandHandler(c.cropUoWFactory(), services.NewTraceTokenGenerator())
}

func (c *CompositionRoot) CreateListCropCommandHandler() commands.ListCropCommandHandler {
	return commands.NewListCropCommandHandler(c.cropUoWFactory())
}

func (c *CompositionRoot) CreateUnlistCropCommandHandler() commands.UnlistCropCommandHandler {
	return commands.NewUnlistCropCommandHandler(c.cropUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.tradeUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.tradeUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	return commands.NewShipOrderCommandHandler(c.tradeUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.tradeUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.tradeUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.tradeUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRaiseDisputeCommandHandler() commands.RaiseDisputeCommandHandler {
	return commands.NewRaiseDisputeCommandHandler(c.disputeUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateResolveDisputeCommandHandler() commands.ResolveDisputeCommandHandler {
	return commands.NewResolveDisputeCommandHandler(c.disputeUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateEscalateDisputeCommandHandler() commands.EscalateDisputeCommandHandler {
	return commands.NewEscalateDisputeCommandHandler(c.disputeUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCloseDisputeCommandHandler() commands.CloseDisputeCommandHandler {
	return commands.NewCloseDisputeCommandHandler(c.disputeUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdateDisputeCommandHandler() commands.UpdateDisputeCommandHandler {
	return commands.NewUpdateDisputeCommandHandler(c.disputeUoWFactory())
}

func (c *CompositionRoot) CreateAnchorLedgerCommandHandler() commands.AnchorLedgerCommandHandler {
	return commands.NewAnchorLedgerCommandHandler(c.anchorUoWFactory())
}

func (c *CompositionRoot) CreateTraceCropQueryHandler() queries.TraceCropQueryHandler {
	return queries.NewTraceCropQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetListedCropsQueryHandler() queries.GetListedCropsQueryHandler {
	return queries.NewGetListedCropsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCropsByOwnerQueryHandler() queries.GetCropsByOwnerQueryHandler {
	return queries.NewGetCropsByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByPartyQueryHandler() queries.GetOrdersByPartyQueryHandler {
	return queries.NewGetOrdersByPartyQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDisputesQueryHandler() queries.GetDisputesQueryHandler {
	return queries.NewGetDisputesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCanAccessDisputeQueryHandler() queries.CanAccessDisputeQueryHandler {
	return queries.NewCanAccessDisputeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckOrderTransitionQueryHandler() queries.CheckOrderTransitionQueryHandler {
	return queries.NewCheckOrderTransitionQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter over every handler.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerHandlers{
		RegisterCrop:    c.CreateRegisterCropCommandHandler(),
		ListCrop:        c.CreateListCropCommandHandler(),
		UnlistCrop:      c.CreateUnlistCropCommandHandler(),
		PlaceOrder:      c.CreatePlaceOrderCommandHandler(),
		AcceptOrder:     c.CreateAcceptOrderCommandHandler(),
		ShipOrder:       c.CreateShipOrderCommandHandler(),
		CompleteOrder:   c.CreateCompleteOrderCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		RejectOrder:     c.CreateRejectOrderCommandHandler(),
		RaiseDispute:    c.CreateRaiseDisputeCommandHandler(),
		ResolveDispute:  c.CreateResolveDisputeCommandHandler(),
		EscalateDispute: c.CreateEscalateDisputeCommandHandler(),
		CloseDispute:    c.CreateCloseDisputeCommandHandler(),
		UpdateDispute:   c.CreateUpdateDisputeCommandHandler(),

		TraceCrop:            c.CreateTraceCropQueryHandler(),
		GetListedCrops:       c.CreateGetListedCropsQueryHandler(),
		GetCropsByOwner:      c.CreateGetCropsByOwnerQueryHandler(),
		GetOrdersByParty:     c.CreateGetOrdersByPartyQueryHandler(),
		GetDisputes:          c.CreateGetDisputesQueryHandler(),
		CanAccessDispute:     c.CreateCanAccessDisputeQueryHandler(),
		CheckOrderTransition: c.CreateCheckOrderTransitionQueryHandler(),
	}, c.metrics)
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager(anchorSchedule string) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAnchorLedgerCommandHandler(), anchorSchedule, c.logger)
}

type FuncCropUoWFactory func() commands.CropUoW

func (f FuncCropUoWFactory) Create() commands.CropUoW {
	return f()
}

type FuncTradeUoWFactory func() commands.TradeUoW

func (f FuncTradeUoWFactory) Create() commands.TradeUoW {
	return f()
}

type FuncDisputeUoWFactory func() commands.DisputeUoW

func (f FuncDisputeUoWFactory) Create() commands.DisputeUoW {
	return f()
}

type FuncAnchorUoWFactory func() commands.AnchorUoW

func (f FuncAnchorUoWFactory) Create() commands.AnchorUoW {
	return f()
}

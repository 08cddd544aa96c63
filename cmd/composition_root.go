package cmd

import (
	"log/slog"

	httpadapter "tracker/internal/adapters/in/http"
	"tracker/internal/adapters/in/ws"
	"tracker/internal/adapters/out/postgres"
	"tracker/internal/adapters/out/pubsub"
	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/core/application/usecases/queries"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/shipment"
	"tracker/internal/jobs"
	"tracker/internal/pkg/idlock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	hub         *pubsub.Hub
	locks       *idlock.KeyedMutex
	tariff      shipment.Tariff
	serviceArea kernel.BoundingBox
	logger      *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	tariff, err := shipment.NewTariff(configs.BaseFare, configs.PerKmRate)
	if err != nil {
		return CompositionRoot{}, err
	}
	southWest, err := kernel.NewGeoPoint(configs.ServiceAreaWestLng, configs.ServiceAreaSouthLat)
	if err != nil {
		return CompositionRoot{}, err
	}
	northEast, err := kernel.NewGeoPoint(configs.ServiceAreaEastLng, configs.ServiceAreaNorthLat)
	if err != nil {
		return CompositionRoot{}, err
	}
	serviceArea, err := kernel.NewBoundingBox(southWest, northEast)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		hub:         pubsub.NewHub(configs.HubBufferSize),
		locks:       idlock.New(),
		tariff:      tariff,
		serviceArea: serviceArea,
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.tariff)
}

func (c *CompositionRoot) CreateAssignAssociateCommandHandler() commands.AssignAssociateCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAssociateCommandHandler(f, c.hub, c.locks)
}

func (c *CompositionRoot) CreateAdvanceShipmentStatusCommandHandler() commands.AdvanceShipmentStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceShipmentStatusCommandHandler(f, c.hub, c.locks)
}

func (c *CompositionRoot) CreateCreateAssociateCommandHandler() commands.CreateAssociateCommandHandler {
	var f commands.AssociateUoWFactory = FuncAssociateUoWFactory(func() commands.AssociateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAssociateCommandHandler(f, c.serviceArea)
}

func (c *CompositionRoot) CreateUpdateAssociateLocationCommandHandler() commands.UpdateAssociateLocationCommandHandler {
	var f commands.AssociateUoWFactory = FuncAssociateUoWFactory(func() commands.AssociateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAssociateLocationCommandHandler(f, c.hub, c.locks)
}

func (c *CompositionRoot) CreateMoveAssociatesCommandHandler() commands.MoveAssociatesCommandHandler {
	var f commands.AssociateUoWFactory = FuncAssociateUoWFactory(func() commands.AssociateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMoveAssociatesCommandHandler(f, c.hub, c.serviceArea)
}

func (c *CompositionRoot) CreateGetActiveShipmentsQueryHandler() queries.GetActiveShipmentsQueryHandler {
	return queries.NewGetActiveShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllAssociatesQueryHandler() queries.GetAllAssociatesQueryHandler {
	return queries.NewGetAllAssociatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAdminStatsQueryHandler() queries.GetAdminStatsQueryHandler {
	return queries.NewGetAdminStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateShipmentCommandHandler(),
		c.CreateAssignAssociateCommandHandler(),
		c.CreateAdvanceShipmentStatusCommandHandler(),
		c.CreateCreateAssociateCommandHandler(),
		c.CreateUpdateAssociateLocationCommandHandler(),
		c.CreateGetActiveShipmentsQueryHandler(),
		c.CreateGetAllAssociatesQueryHandler(),
		c.CreateGetAdminStatsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateWebSocketHandler() *ws.Handler {
	return ws.NewHandler(c.hub, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateMoveAssociatesCommandHandler(), c.logger)
}

// Hub exposes the event hub so main can close it on shutdown.
func (c *CompositionRoot) Hub() *pubsub.Hub {
	return c.hub
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncAssociateUoWFactory func() commands.AssociateUoW

func (f FuncAssociateUoWFactory) Create() commands.AssociateUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

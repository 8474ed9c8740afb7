package cmd

import (
	"parcel/internal/adapters/out/postgres"
	"parcel/internal/adapters/out/postgres/handlerrepo"
	"parcel/internal/adapters/out/postgres/statusrepo"
	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/services"
	"parcel/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	statusCache *statusrepo.CachedStatusRepository
	policy      services.AccessPolicy
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	statusCache := statusrepo.NewCachedStatusRepository(statusrepo.NewGormStatusRepository(gormDB))
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB, statusCache),
		statusCache: statusCache,
		policy:      services.NewAccessPolicy(),
	}
}

// StatusCache exposes the shared status catalog cache for the refresh job.
func (c *CompositionRoot) StatusCache() *statusrepo.CachedStatusRepository {
	return c.statusCache
}

// CreateHandlerRepository builds the read-side handler record resolver used
// by the worklist routes.
func (c *CompositionRoot) CreateHandlerRepository() ports.HandlerRepository {
	return handlerrepo.NewGormHandlerRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateAssignHandlerCommandHandler() commands.AssignHandlerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignHandlerCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateReceiveParcelCommandHandler() commands.ReceiveParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveParcelCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCancelParcelCommandHandler() commands.CancelParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelParcelCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTimelineQueryHandler() queries.GetTimelineQueryHandler {
	return queries.NewGetTimelineQueryHandler(c.gormDB)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

package cmd

import (
	"log/slog"

	"commerce/internal/adapters/out/eventlog"
	"commerce/internal/adapters/out/postgres"
	"commerce/internal/adapters/out/postgres/addressrepo"
	"commerce/internal/adapters/out/postgres/outboxrepo"
	"commerce/internal/adapters/out/postgres/productrepo"
	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, addressrepo.NewGormAddressRepository(c.gormDB))
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderItemCommandHandler(f, productrepo.NewGormProductRepository(c.gormDB))
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() commands.ShipOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSplitOrderCommandHandler() commands.SplitOrderCommandHandler {
	var f commands.SplitUoWFactory = FuncSplitUoWFactory(func() commands.SplitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSplitOrderCommandHandler(f, addressrepo.NewGormAddressRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		eventlog.NewPublisher(logger),
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSplitUoWFactory func() commands.SplitUoW

func (f FuncSplitUoWFactory) Create() commands.SplitUoW {
	return f()
}

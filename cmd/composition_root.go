package cmd

import (
	"laundryops/internal/adapters/out/postgres"
	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/application/usecases/queries"
	"laundryops/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	evaluator  *services.GateEvaluator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		evaluator:  services.NewGateEvaluator(services.Config{EnforceGates: config.EnforceGates}),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAttemptTransitionCommandHandler() commands.AttemptTransitionCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttemptTransitionCommandHandler(f, c.evaluator)
}

func (c *CompositionRoot) CreateCreateAssemblyTaskCommandHandler() commands.CreateAssemblyTaskCommandHandler {
	var f commands.CreateTaskUoWFactory = FuncCreateTaskUoWFactory(func() commands.CreateTaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAssemblyTaskCommandHandler(f)
}

func (c *CompositionRoot) CreateScanItemCommandHandler() commands.ScanItemCommandHandler {
	var f commands.AssemblyUoWFactory = FuncAssemblyUoWFactory(func() commands.AssemblyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScanItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordQADecisionCommandHandler() commands.RecordQADecisionCommandHandler {
	var f commands.AssemblyUoWFactory = FuncAssemblyUoWFactory(func() commands.AssemblyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordQADecisionCommandHandler(f)
}

func (c *CompositionRoot) CreatePackOrderCommandHandler() commands.PackOrderCommandHandler {
	var f commands.PackUoWFactory = FuncPackUoWFactory(func() commands.PackUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPackOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateResolveExceptionCommandHandler() commands.ResolveExceptionCommandHandler {
	var f commands.ExceptionUoWFactory = FuncExceptionUoWFactory(func() commands.ExceptionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveExceptionCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRouteCommandHandler() commands.AssignRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOpenExceptionsQueryHandler() queries.GetOpenExceptionsQueryHandler {
	return queries.NewGetOpenExceptionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnroutedReadyOrdersQueryHandler() queries.GetUnroutedReadyOrdersQueryHandler {
	return queries.NewGetUnroutedReadyOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncCreateTaskUoWFactory func() commands.CreateTaskUoW

func (f FuncCreateTaskUoWFactory) Create() commands.CreateTaskUoW {
	return f()
}

type FuncAssemblyUoWFactory func() commands.AssemblyUoW

func (f FuncAssemblyUoWFactory) Create() commands.AssemblyUoW {
	return f()
}

type FuncExceptionUoWFactory func() commands.ExceptionUoW

func (f FuncExceptionUoWFactory) Create() commands.ExceptionUoW {
	return f()
}

type FuncPackUoWFactory func() commands.PackUoW

func (f FuncPackUoWFactory) Create() commands.PackUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

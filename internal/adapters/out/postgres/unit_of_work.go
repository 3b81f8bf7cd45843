// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. The Unit of Work maintains the set of aggregates affected by one
// business operation and coordinates writing out their changes in a single
// database transaction.
//
// Every workflow operation — transition, scan, QA decision, exception
// resolution, packing, route assignment — runs through a unit of work so its
// writes commit or roll back together.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.OrderRepository().Update(ctx, order); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//	if err := uow.StatusHistoryRepository().Add(ctx, tenantID, entry); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance provides an isolated transaction; concurrent
// goroutines must use separate instances. Optimistic version checks inside
// the repositories resolve write conflicts between concurrent units.
package postgres

import (
	"context"

	"laundryops/internal/adapters/out/postgres/assemblyrepo"
	"laundryops/internal/adapters/out/postgres/exceptionrepo"
	"laundryops/internal/adapters/out/postgres/orderrepo"
	"laundryops/internal/adapters/out/postgres/packingrepo"
	"laundryops/internal/adapters/out/postgres/routerepo"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{} // Will be changed to a common Aggregate interface in the future
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work with proper
// isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all created units.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state and aggregate
// tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Implements the Unit of Work pattern using
// GORM's transaction capabilities.
//
// The unit of work tracks all aggregates modified during the transaction,
// enabling patterns like domain event publishing after successful commits.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Subsequent repository operations execute within this transaction context.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// After rollback, the transaction is closed and cannot be reused.
//
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction, or the main connection when no
// transaction was begun.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository provides access to order persistence within the unit of
// work. Operations execute within the current transaction if one is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// StatusHistoryRepository provides access to the append-only status history
// log within the unit of work.
func (uow *GormUnitOfWork) StatusHistoryRepository() ports.StatusHistoryRepository {
	return orderrepo.NewGormStatusHistoryRepository(uow.conn())
}

// AssemblyTaskRepository provides access to assembly task persistence within
// the unit of work.
func (uow *GormUnitOfWork) AssemblyTaskRepository() ports.AssemblyTaskRepository {
	return assemblyrepo.NewGormAssemblyTaskRepository(uow.conn(), uow)
}

// ExceptionRepository provides access to exception persistence within the
// unit of work.
func (uow *GormUnitOfWork) ExceptionRepository() ports.ExceptionRepository {
	return exceptionrepo.NewGormExceptionRepository(uow.conn(), uow)
}

// PackingListRepository provides access to packing list persistence within
// the unit of work.
func (uow *GormUnitOfWork) PackingListRepository() ports.PackingListRepository {
	return packingrepo.NewGormPackingListRepository(uow.conn(), uow)
}

// RouteAssignmentRepository provides access to route assignment persistence
// within the unit of work.
func (uow *GormUnitOfWork) RouteAssignmentRepository() ports.RouteAssignmentRepository {
	return routerepo.NewGormRouteAssignmentRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it when aggregates are added or
// updated; the tracked set enables post-commit processing such as domain
// event publishing.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command, ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every workflow
// operation — transition, scan, QA decision, exception resolution, packing —
// executes as one all-or-nothing unit through it: either all of its writes
// commit or none do.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// StatusHistoryRepository returns a StatusHistoryRepository bound to
	// the current transaction.
	StatusHistoryRepository() StatusHistoryRepository

	// AssemblyTaskRepository returns an AssemblyTaskRepository bound to
	// the current transaction.
	AssemblyTaskRepository() AssemblyTaskRepository

	// ExceptionRepository returns an ExceptionRepository bound to the
	// current transaction.
	ExceptionRepository() ExceptionRepository

	// PackingListRepository returns a PackingListRepository bound to the
	// current transaction.
	PackingListRepository() PackingListRepository

	// RouteAssignmentRepository returns a RouteAssignmentRepository bound
	// to the current transaction.
	RouteAssignmentRepository() RouteAssignmentRepository
}

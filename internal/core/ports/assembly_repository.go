package ports

import (
	"context"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
)

// AssemblyTaskRepository defines the persistence contract for assembly task
// aggregates, including their manifest lines, scan events and QA decisions.
type AssemblyTaskRepository interface {
	// Add persists a new task with its manifest snapshot.
	Add(ctx context.Context, aggregate *assembly.Task) error

	// Update persists manifest counts and appended scan/decision records
	// with an optimistic version precondition. Returns
	// errs.ConcurrentConflictError when the stored version no longer
	// matches, which serializes concurrent scans of the same task.
	Update(ctx context.Context, aggregate *assembly.Task) error

	// Get retrieves a task by identifier within the tenant's scope.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*assembly.Task, error)

	// GetActiveByOrder retrieves the order's incomplete task, or
	// errs.ObjectNotFoundError when every task is complete or none exists.
	GetActiveByOrder(ctx context.Context, tenantID, orderID kernel.UUID) (*assembly.Task, error)

	// GetLatestByOrder retrieves the order's most recently created task
	// regardless of completion. Used by gate evaluation.
	GetLatestByOrder(ctx context.Context, tenantID, orderID kernel.UUID) (*assembly.Task, error)
}

// ExceptionRepository defines the persistence contract for assembly/QA
// exceptions.
type ExceptionRepository interface {
	// Add persists a newly raised exception.
	Add(ctx context.Context, aggregate *assembly.Exception) error

	// Update persists an exception's resolution.
	Update(ctx context.Context, aggregate *assembly.Exception) error

	// Get retrieves an exception by identifier within the tenant's scope.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*assembly.Exception, error)
}

// PackingListRepository defines the persistence contract for packing lists.
type PackingListRepository interface {
	// Add persists a newly generated packing list.
	Add(ctx context.Context, aggregate *assembly.PackingList) error

	// GetByTask retrieves the task's packing list, or
	// errs.ObjectNotFoundError when the task has not been packed. Packing
	// idempotency is built on this lookup.
	GetByTask(ctx context.Context, tenantID, taskID kernel.UUID) (*assembly.PackingList, error)
}

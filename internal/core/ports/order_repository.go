package ports

import (
	"context"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every operation is scoped by tenant: an order owned by another tenant is
// reported as not found, never leaked.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order with an optimistic
	// version precondition. Returns errs.ConcurrentConflictError when the
	// stored version no longer matches the aggregate's loaded version.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier within the tenant's scope.
	Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves the tenant's orders currently in the given
	// status. Used by the route-assignment sweep over Ready orders.
	GetAllInStatus(ctx context.Context, tenantID kernel.UUID, status order.Status) ([]*order.Order, error)
}

// StatusHistoryRepository defines the persistence contract for the
// append-only status history log. Entries are never updated or deleted.
type StatusHistoryRepository interface {
	// Add appends a history entry under the tenant's scope. Must run in
	// the same transaction as the status update it records.
	Add(ctx context.Context, tenantID kernel.UUID, entry order.StatusHistoryEntry) error

	// ListByOrder retrieves an order's history in chronological order.
	ListByOrder(ctx context.Context, tenantID, orderID kernel.UUID) ([]order.StatusHistoryEntry, error)
}

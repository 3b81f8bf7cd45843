package ports

import (
	"context"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/route"
)

// RouteAssignmentRepository defines the persistence contract for
// delivery-route assignments.
type RouteAssignmentRepository interface {
	// Add persists a new route assignment.
	Add(ctx context.Context, aggregate *route.Assignment) error

	// GetByOrder retrieves the order's assignment, or
	// errs.ObjectNotFoundError when the order is unrouted. Assignment
	// idempotency is built on this lookup.
	GetByOrder(ctx context.Context, tenantID, orderID kernel.UUID) (*route.Assignment, error)

	// NextPosition returns the next free stop position on a route,
	// starting at 1 for an empty route. Must run in the same transaction
	// as the Add that consumes it.
	NextPosition(ctx context.Context, tenantID kernel.UUID, routeCode string) (int, error)
}

package queries

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrGetUnroutedReadyOrdersQueryIsNotConstructed = errors.New(
	"GetUnroutedReadyOrdersQuery must be created via NewGetUnroutedReadyOrdersQuery constructor",
)

// GetUnroutedReadyOrdersQuery retrieves, across all tenants, orders that are
// Ready but not yet placed on a delivery route. Feeds the route assignment
// sweep.
type GetUnroutedReadyOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnroutedReadyOrdersQuery creates a parameterless query for the route
// assignment sweep.
func NewGetUnroutedReadyOrdersQuery() GetUnroutedReadyOrdersQuery {
	return GetUnroutedReadyOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnroutedReadyOrdersQueryIsNotConstructed if validation fails.
func (q GetUnroutedReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnroutedReadyOrdersQueryIsNotConstructed)
}

// GetUnroutedReadyOrdersQueryResponse identifies one sweepable order with its
// tenant scope.
type GetUnroutedReadyOrdersQueryResponse struct {
	TenantID kernel.UUID
	OrderID  kernel.UUID
}

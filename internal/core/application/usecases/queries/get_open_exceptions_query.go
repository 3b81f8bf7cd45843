package queries

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrGetOpenExceptionsQueryIsNotConstructed = errors.New(
	"GetOpenExceptionsQuery must be created via NewGetOpenExceptionsQuery constructor",
)

// GetOpenExceptionsQuery retrieves all unresolved exceptions of a tenant for
// the exception work queue.
type GetOpenExceptionsQuery struct {
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOpenExceptionsQuery creates a query for a tenant's open exceptions.
func NewGetOpenExceptionsQuery(tenantID kernel.UUID) (GetOpenExceptionsQuery, error) {
	if err := tenantID.Validate(); err != nil {
		return GetOpenExceptionsQuery{}, err
	}

	return GetOpenExceptionsQuery{
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenExceptionsQueryIsNotConstructed if validation fails.
func (q GetOpenExceptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenExceptionsQueryIsNotConstructed)
}

// TenantID returns the tenant scope of the request.
func (q GetOpenExceptionsQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// GetOpenExceptionsQueryResponse is one open exception work item.
type GetOpenExceptionsQueryResponse struct {
	ID       kernel.UUID
	TaskID   kernel.UUID
	OrderID  kernel.UUID
	Kind     string
	RaisedAt time.Time
}

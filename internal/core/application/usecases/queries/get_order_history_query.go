package queries

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves the full status transition audit trail of
// one order, oldest entry first.
type GetOrderHistoryQuery struct {
	orderID  kernel.UUID
	tenantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for an order's transition history.
func NewGetOrderHistoryQuery(orderID, tenantID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := errors.Join(orderID.Validate(), tenantID.Validate()); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID:  orderID,
		tenantID: tenantID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// TenantID returns the tenant scope of the request.
func (q GetOrderHistoryQuery) TenantID() kernel.UUID {
	return q.tenantID
}

// GetOrderHistoryQueryResponse is one status transition record.
type GetOrderHistoryQueryResponse struct {
	ID         kernel.UUID
	FromStatus string
	ToStatus   string
	ActorID    kernel.UUID
	Note       string
	Override   bool
	OccurredAt time.Time
}

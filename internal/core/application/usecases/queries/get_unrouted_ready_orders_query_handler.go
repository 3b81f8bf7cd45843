package queries

import (
	"context"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnroutedReadyOrdersQueryHandler finds Ready orders without a route
// assignment. The anti-join keeps the sweep idempotent: once routed, an order
// stops appearing.
type GetUnroutedReadyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnroutedReadyOrdersQueryHandler creates a handler for the sweep
// query. Requires a GORM database connection for query execution.
func NewGetUnroutedReadyOrdersQueryHandler(db *gorm.DB) GetUnroutedReadyOrdersQueryHandler {
	return GetUnroutedReadyOrdersQueryHandler{db: db}
}

// Handle executes the query across all tenants, oldest orders first.
func (h GetUnroutedReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnroutedReadyOrdersQuery,
) ([]GetUnroutedReadyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnroutedReadyOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.tenant_id,
			o.id
		FROM orders o
		LEFT JOIN route_assignments ra ON ra.order_id = o.id
		WHERE o.status = ? AND ra.id IS NULL
		ORDER BY o.received_at
	`, order.Ready).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnroutedReadyOrdersQueryResponse
		var tenantID, orderID uuid.UUID

		err = rows.Scan(&tenantID, &orderID)
		if err != nil {
			return nil, err
		}

		tenant, tenantErr := kernel.UUIDFromBytes(tenantID[:])
		if tenantErr != nil {
			return nil, tenantErr
		}
		resp.TenantID = tenant

		oID, orderErr := kernel.UUIDFromBytes(orderID[:])
		if orderErr != nil {
			return nil, orderErr
		}
		resp.OrderID = oID

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

package queries

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenExceptionsQueryHandler reads the tenant's open-exception work queue
// straight from the database, joined to the owning order for dispatching.
type GetOpenExceptionsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenExceptionsQueryHandler creates a handler for exception queue
// queries. Requires a GORM database connection for query execution.
func NewGetOpenExceptionsQueryHandler(db *gorm.DB) GetOpenExceptionsQueryHandler {
	return GetOpenExceptionsQueryHandler{db: db}
}

// Handle executes the query. Oldest exceptions come first so the queue is
// worked in raise order.
func (h GetOpenExceptionsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenExceptionsQuery,
) ([]GetOpenExceptionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	exceptions := make([]GetOpenExceptionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.task_id,
			t.order_id,
			e.kind,
			e.raised_at
		FROM exceptions e
		JOIN assembly_tasks t ON t.id = e.task_id
		WHERE e.tenant_id = ? AND e.resolved_at IS NULL
		ORDER BY e.raised_at, e.id
	`, query.TenantID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var exc GetOpenExceptionsQueryResponse
		var id, taskID, orderID uuid.UUID
		var kind int
		var raisedAt time.Time

		err = rows.Scan(
			&id,
			&taskID,
			&orderID,
			&kind,
			&raisedAt,
		)
		if err != nil {
			return nil, err
		}

		exc.Kind = assembly.ExceptionKind(kind).String()

		excID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		exc.ID = excID

		task, taskErr := kernel.UUIDFromBytes(taskID[:])
		if taskErr != nil {
			return nil, taskErr
		}
		exc.TaskID = task

		ord, ordErr := kernel.UUIDFromBytes(orderID[:])
		if ordErr != nil {
			return nil, ordErr
		}
		exc.OrderID = ord

		exc.RaisedAt = raisedAt
		exceptions = append(exceptions, exc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return exceptions, nil
}

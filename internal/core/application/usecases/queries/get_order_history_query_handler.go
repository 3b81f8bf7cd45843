package queries

import (
	"context"
	"database/sql"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads an order's transition audit trail
// straight from the database, bypassing the aggregate.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. Entries are returned oldest first so the
// response reads as the order's timeline.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			from_status,
			to_status,
			actor_id,
			note,
			override,
			occurred_at
		FROM status_history
		WHERE tenant_id = ? AND order_id = ?
		ORDER BY occurred_at, id
	`, query.TenantID().String(), query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetOrderHistoryQueryResponse
		var id, actorID uuid.UUID
		var fromStatus, toStatus int
		var note sql.NullString
		var occurredAt time.Time

		err = rows.Scan(
			&id,
			&fromStatus,
			&toStatus,
			&actorID,
			&note,
			&entry.Override,
			&occurredAt,
		)
		if err != nil {
			return nil, err
		}

		entry.FromStatus = order.Status(fromStatus).String()
		entry.ToStatus = order.Status(toStatus).String()

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = entryID

		actor, actorErr := kernel.UUIDFromBytes(actorID[:])
		if actorErr != nil {
			return nil, actorErr
		}
		entry.ActorID = actor

		entry.Note = note.String
		entry.OccurredAt = occurredAt
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

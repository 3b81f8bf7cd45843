package orderrepo

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormStatusHistoryRepository implements StatusHistoryRepository using GORM.
// The log is append-only: there is no update or delete path.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

// NewGormStatusHistoryRepository creates a new GORM status history
// repository.
func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

// Add appends a history entry under the tenant's scope.
func (r *GormStatusHistoryRepository) Add(
	ctx context.Context, tenantID kernel.UUID, entry order.StatusHistoryEntry,
) error {
	if err := errors.Join(tenantID.Validate(), entry.Validate()); err != nil {
		return err
	}

	dto := historyFromDomain(tenantID, entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListByOrder retrieves an order's history in chronological order.
func (r *GormStatusHistoryRepository) ListByOrder(
	ctx context.Context, tenantID, orderID kernel.UUID,
) ([]order.StatusHistoryEntry, error) {
	if err := errors.Join(tenantID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	var dtos []StatusHistoryDTO
	err := r.db.WithContext(ctx).
		Order("occurred_at, id").
		Find(&dtos, "tenant_id = ? AND order_id = ?", tenantID.Bytes(), orderID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]order.StatusHistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := historyToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

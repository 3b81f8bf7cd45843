package packingrepo

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackingListRepository implements PackingListRepository using GORM.
type GormPackingListRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPackingListRepository creates a new GORM packing list repository.
func NewGormPackingListRepository(db *gorm.DB, tracker aggregateTracker) *GormPackingListRepository {
	return &GormPackingListRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly generated packing list to the database.
func (r *GormPackingListRepository) Add(ctx context.Context, aggregate *assembly.PackingList) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByTask retrieves the task's packing list.
func (r *GormPackingListRepository) GetByTask(
	ctx context.Context, tenantID, taskID kernel.UUID,
) (*assembly.PackingList, error) {
	if err := errors.Join(tenantID.Validate(), taskID.Validate()); err != nil {
		return nil, err
	}

	var dto PackingListDTO
	err := r.db.WithContext(ctx).
		First(&dto, "task_id = ? AND tenant_id = ?", taskID.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("packing list", taskID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

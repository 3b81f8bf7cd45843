package assemblyrepo

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAssemblyTaskRepository implements AssemblyTaskRepository using GORM.
type GormAssemblyTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAssemblyTaskRepository creates a new GORM assembly task repository.
func NewGormAssemblyTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormAssemblyTaskRepository {
	return &GormAssemblyTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new task with its manifest snapshot to the database.
func (r *GormAssemblyTaskRepository) Add(ctx context.Context, aggregate *assembly.Task) error {
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

// Update saves the task with its loaded version as optimistic precondition.
// Manifest remaining counts are rewritten; scan and decision rows are
// insert-only, so already persisted ones are skipped on conflict. When the
// stored version no longer matches — a concurrent scan won the race — the
// update touches zero rows and ConcurrentConflictError is returned.
func (r *GormAssemblyTaskRepository) Update(ctx context.Context, aggregate *assembly.Task) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&TaskDTO{}).
		Where("id = ? AND tenant_id = ? AND version = ?", dto.ID, dto.TenantID, dto.Version).
		Updates(map[string]any{
			"completed_at": dto.CompletedAt,
			"version":      dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConcurrentConflictError("assembly task", aggregate.ID().String())
	}

	for _, line := range dto.Manifest {
		err := db.Model(&ManifestLineDTO{}).
			Where("task_id = ? AND item_id = ?", line.TaskID, line.ItemID).
			Update("remaining", line.Remaining).Error
		if err != nil {
			return err
		}
	}

	if len(dto.Scans) > 0 {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Scans).Error
		if err != nil {
			return err
		}
	}

	if len(dto.Decisions) > 0 {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Decisions).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a task by ID within the tenant's scope.
func (r *GormAssemblyTaskRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*assembly.Task, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto TaskDTO
	err := r.loadQuery(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assembly task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrder retrieves the order's incomplete task.
func (r *GormAssemblyTaskRepository) GetActiveByOrder(
	ctx context.Context, tenantID, orderID kernel.UUID,
) (*assembly.Task, error) {
	if err := errors.Join(tenantID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	var dto TaskDTO
	err := r.loadQuery(ctx).
		First(&dto, "order_id = ? AND tenant_id = ? AND completed_at IS NULL",
			orderID.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active assembly task", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestByOrder retrieves the order's most recently created task
// regardless of completion.
func (r *GormAssemblyTaskRepository) GetLatestByOrder(
	ctx context.Context, tenantID, orderID kernel.UUID,
) (*assembly.Task, error) {
	if err := errors.Join(tenantID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	var dto TaskDTO
	err := r.loadQuery(ctx).
		Order("created_at DESC").
		First(&dto, "order_id = ? AND tenant_id = ?", orderID.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assembly task", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// loadQuery preloads the task's child collections. Scans and decisions are
// ordered oldest first; the domain treats the last decision as
// authoritative.
func (r *GormAssemblyTaskRepository) loadQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Manifest").
		Preload("Scans", func(db *gorm.DB) *gorm.DB {
			return db.Order("occurred_at, id")
		}).
		Preload("Decisions", func(db *gorm.DB) *gorm.DB {
			return db.Order("occurred_at, id")
		})
}

package exceptionrepo

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormExceptionRepository implements ExceptionRepository using GORM.
type GormExceptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormExceptionRepository creates a new GORM exception repository.
func NewGormExceptionRepository(db *gorm.DB, tracker aggregateTracker) *GormExceptionRepository {
	return &GormExceptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly raised exception to the database.
func (r *GormExceptionRepository) Add(ctx context.Context, aggregate *assembly.Exception) error {
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

// Update persists the exception's resolution. The update is conditioned on
// the row still being unresolved, so two racing resolutions cannot both win:
// the loser gets ErrExceptionAlreadyResolved and the first resolution stands.
func (r *GormExceptionRepository) Update(ctx context.Context, aggregate *assembly.Exception) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ExceptionDTO{}).
		Where("id = ? AND tenant_id = ? AND resolved_at IS NULL", dto.ID, dto.TenantID).
		Updates(map[string]any{
			"resolver_id": dto.ResolverID,
			"resolution":  dto.Resolution,
			"resolved_at": dto.ResolvedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return assembly.ErrExceptionAlreadyResolved
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an exception by ID within the tenant's scope.
func (r *GormExceptionRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*assembly.Exception, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto ExceptionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("exception", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

package routerepo

import (
	"context"
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/route"
	"laundryops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteAssignmentRepository implements RouteAssignmentRepository using
// GORM.
type GormRouteAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteAssignmentRepository creates a new GORM route assignment
// repository.
func NewGormRouteAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteAssignmentRepository {
	return &GormRouteAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route assignment to the database.
func (r *GormRouteAssignmentRepository) Add(ctx context.Context, aggregate *route.Assignment) error {
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

// GetByOrder retrieves the order's assignment.
func (r *GormRouteAssignmentRepository) GetByOrder(
	ctx context.Context, tenantID, orderID kernel.UUID,
) (*route.Assignment, error) {
	if err := errors.Join(tenantID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND tenant_id = ?", orderID.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// NextPosition returns the next free stop position on a route, starting at 1
// for an empty route. Must run in the same transaction as the Add that
// consumes the position.
func (r *GormRouteAssignmentRepository) NextPosition(
	ctx context.Context, tenantID kernel.UUID, routeCode string,
) (int, error) {
	if err := tenantID.Validate(); err != nil {
		return 0, err
	}
	if routeCode == "" {
		return 0, errs.NewValueIsRequiredError("routeCode")
	}

	var maxPosition int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(position), 0)
		FROM route_assignments
		WHERE tenant_id = ? AND route_code = ?
	`, tenantID.Bytes(), routeCode).Scan(&maxPosition).Error
	if err != nil {
		return 0, err
	}

	return maxPosition + 1, nil
}

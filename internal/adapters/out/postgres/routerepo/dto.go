// Package routerepo provides data transfer objects and mapping functions for
// route assignment persistence. The unique index on order_id backs
// assignment idempotency: an order rides at most one route.
package routerepo

import (
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting route
// assignments.
type AssignmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	OrderID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RouteCode  string    `gorm:"index"`
	Position   int
	AssignedAt time.Time
}

// TableName specifies the database table name for route assignments.
func (AssignmentDTO) TableName() string {
	return "route_assignments"
}

// fromDomain converts a route assignment to its database representation.
func fromDomain(a *route.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:         a.ID().Bytes(),
		TenantID:   a.TenantID().Bytes(),
		OrderID:    a.OrderID().Bytes(),
		RouteCode:  a.RouteCode(),
		Position:   a.Position(),
		AssignedAt: a.AssignedAt(),
	}
}

// toDomain converts a database DTO to a route assignment using
// RestoreAssignment.
func toDomain(dto AssignmentDTO) (*route.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreAssignment(
		id, tenantID, orderID, dto.RouteCode, dto.Position, dto.AssignedAt)
}

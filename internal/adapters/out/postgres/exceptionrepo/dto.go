// Package exceptionrepo provides data transfer objects and mapping functions
// for exception persistence. Resolution columns stay NULL while the
// exception is open; resolving fills them exactly once.
package exceptionrepo

import (
	"time"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExceptionDTO represents the database structure for persisting exceptions.
type ExceptionDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID  `gorm:"type:uuid;index"`
	TaskID     uuid.UUID  `gorm:"type:uuid;index"`
	Kind       int
	RaisedAt   time.Time
	ResolverID *uuid.UUID `gorm:"type:uuid"`
	Resolution *string
	ResolvedAt *time.Time
}

// TableName specifies the database table name for exceptions.
func (ExceptionDTO) TableName() string {
	return "exceptions"
}

// fromDomain converts an exception to its database representation.
func fromDomain(e *assembly.Exception) ExceptionDTO {
	dto := ExceptionDTO{
		ID:       e.ID().Bytes(),
		TenantID: e.TenantID().Bytes(),
		TaskID:   e.TaskID().Bytes(),
		Kind:     int(e.Kind()),
		RaisedAt: e.RaisedAt(),
	}

	if resolution := e.Resolution(); resolution != nil {
		resolverID := resolution.ResolverID.Bytes()
		text := resolution.Text
		resolvedAt := resolution.ResolvedAt
		dto.ResolverID = &resolverID
		dto.Resolution = &text
		dto.ResolvedAt = &resolvedAt
	}

	return dto
}

// toDomain converts a database DTO to an exception using RestoreException.
func toDomain(dto ExceptionDTO) (*assembly.Exception, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return nil, err
	}

	var resolution *assembly.Resolution
	if dto.ResolvedAt != nil && dto.ResolverID != nil && dto.Resolution != nil {
		resolverID, resolverErr := kernel.UUIDFromBytes((*dto.ResolverID)[:])
		if resolverErr != nil {
			return nil, resolverErr
		}

		resolution = &assembly.Resolution{
			ResolverID: resolverID,
			Text:       *dto.Resolution,
			ResolvedAt: *dto.ResolvedAt,
		}
	}

	return assembly.RestoreException(
		id, tenantID, taskID, assembly.ExceptionKind(dto.Kind), dto.RaisedAt, resolution)
}

// Package packingrepo provides data transfer objects and mapping functions
// for packing list persistence. The unique index on task_id backs packing
// idempotency at the storage level: one list per packed task.
package packingrepo

import (
	"time"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// PackingListDTO represents the database structure for persisting packing
// lists.
type PackingListDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID      uuid.UUID `gorm:"type:uuid;index"`
	TaskID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	PackagingType string
	Note          string
	GeneratedAt   time.Time
}

// TableName specifies the database table name for packing lists.
func (PackingListDTO) TableName() string {
	return "packing_lists"
}

// fromDomain converts a packing list to its database representation.
func fromDomain(p *assembly.PackingList) PackingListDTO {
	return PackingListDTO{
		ID:            p.ID().Bytes(),
		TenantID:      p.TenantID().Bytes(),
		TaskID:        p.TaskID().Bytes(),
		PackagingType: p.PackagingType(),
		Note:          p.Note(),
		GeneratedAt:   p.GeneratedAt(),
	}
}

// toDomain converts a database DTO to a packing list using
// RestorePackingList.
func toDomain(dto PackingListDTO) (*assembly.PackingList, error) {
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

	return assembly.RestorePackingList(
		id, tenantID, taskID, dto.PackagingType, dto.Note, dto.GeneratedAt)
}

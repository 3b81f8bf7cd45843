package assembly

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// ErrPackingListIsNotConstructed is returned when a PackingList was not
// created via NewPackingList or RestorePackingList.
var ErrPackingListIsNotConstructed = errors.New(
	"PackingList must be created via NewPackingList or RestorePackingList")

// PackingList is the packing record derived from a completed assembly task.
// Exactly one list exists per packed task: re-packing an already packed task
// returns the existing list instead of creating a duplicate.
type PackingList struct {
	id            kernel.UUID
	tenantID      kernel.UUID
	taskID        kernel.UUID
	packagingType string
	note          string
	generatedAt   time.Time

	isConstructed bool
}

// NewPackingList creates a packing list for a task. The caller is
// responsible for checking the task is ready to pack.
func NewPackingList(
	id, tenantID, taskID kernel.UUID,
	packagingType, note string,
	generatedAt time.Time,
) (*PackingList, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), taskID.Validate()); err != nil {
		return nil, err
	}
	if packagingType == "" {
		return nil, errs.NewValueIsRequiredError("packagingType")
	}
	if generatedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("generatedAt")
	}

	return &PackingList{
		id:            id,
		tenantID:      tenantID,
		taskID:        taskID,
		packagingType: packagingType,
		note:          note,
		generatedAt:   generatedAt,
		isConstructed: true,
	}, nil
}

// RestorePackingList reconstructs a packing list from persisted state.
func RestorePackingList(
	id, tenantID, taskID kernel.UUID,
	packagingType, note string,
	generatedAt time.Time,
) (*PackingList, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), taskID.Validate()); err != nil {
		return nil, err
	}

	return &PackingList{
		id:            id,
		tenantID:      tenantID,
		taskID:        taskID,
		packagingType: packagingType,
		note:          note,
		generatedAt:   generatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the packing list was created via a constructor.
func (p *PackingList) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackingListIsNotConstructed
	}
	return nil
}

// ID returns the packing list's unique identifier.
func (p *PackingList) ID() kernel.UUID { return p.id }

// TenantID returns the owning tenant's identifier.
func (p *PackingList) TenantID() kernel.UUID { return p.tenantID }

// TaskID returns the assembly task the list was generated from.
func (p *PackingList) TaskID() kernel.UUID { return p.taskID }

// PackagingType returns the packaging type code.
func (p *PackingList) PackagingType() string { return p.packagingType }

// Note returns the optional packing note.
func (p *PackingList) Note() string { return p.note }

// GeneratedAt returns when the list was generated.
func (p *PackingList) GeneratedAt() time.Time { return p.generatedAt }

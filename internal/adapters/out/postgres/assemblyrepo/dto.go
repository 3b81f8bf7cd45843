// Package assemblyrepo provides data transfer objects and mapping functions
// for assembly task persistence: the task row, its manifest lines, and the
// append-only scan event and QA decision logs.
package assemblyrepo

import (
	"time"

	"laundryops/internal/core/domain/model/assembly"
	"laundryops/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting assembly task
// aggregates. CreatedAt exists only to order an order's tasks by recency;
// the domain does not carry it.
type TaskDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID `gorm:"type:uuid;index"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	CompletedAt *time.Time
	Version     int
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Manifest  []ManifestLineDTO `gorm:"foreignKey:TaskID;references:ID"`
	Scans     []ScanEventDTO    `gorm:"foreignKey:TaskID;references:ID"`
	Decisions []QADecisionDTO   `gorm:"foreignKey:TaskID;references:ID"`
}

// TableName specifies the database table name for assembly tasks.
func (TaskDTO) TableName() string {
	return "assembly_tasks"
}

// ManifestLineDTO represents one expected-item line of a task manifest.
// Only the remaining count changes after creation.
type ManifestLineDTO struct {
	TaskID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Barcode     string
	Description string
	Expected    int
	Remaining   int
}

// TableName specifies the database table name for manifest lines.
func (ManifestLineDTO) TableName() string {
	return "manifest_lines"
}

// ScanEventDTO represents one barcode scan record. Rows are insert-only.
type ScanEventDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TaskID     uuid.UUID  `gorm:"type:uuid;index"`
	Barcode    string
	ItemID     *uuid.UUID `gorm:"type:uuid"`
	Outcome    int
	ActorID    uuid.UUID  `gorm:"type:uuid"`
	OccurredAt time.Time
}

// TableName specifies the database table name for scan events.
func (ScanEventDTO) TableName() string {
	return "scan_events"
}

// QADecisionDTO represents one quality inspection verdict. Rows are
// insert-only; the latest row per task is authoritative.
type QADecisionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaskID     uuid.UUID `gorm:"type:uuid;index"`
	Decision   int
	Note       string
	PhotoRef   string
	ActorID    uuid.UUID `gorm:"type:uuid"`
	OccurredAt time.Time
}

// TableName specifies the database table name for QA decisions.
func (QADecisionDTO) TableName() string {
	return "qa_decisions"
}

// fromDomain converts a task aggregate to its database representation.
func fromDomain(task *assembly.Task) TaskDTO {
	manifest := make([]ManifestLineDTO, 0, len(task.Manifest()))
	for _, line := range task.Manifest() {
		manifest = append(manifest, ManifestLineDTO{
			TaskID:      task.ID().Bytes(),
			ItemID:      line.ItemID().Bytes(),
			Barcode:     line.Barcode(),
			Description: line.Description(),
			Expected:    line.Expected(),
			Remaining:   line.Remaining(),
		})
	}

	scans := make([]ScanEventDTO, 0, len(task.Scans()))
	for _, scan := range task.Scans() {
		var itemID *uuid.UUID
		if id := scan.ItemID(); id != nil {
			raw := id.Bytes()
			itemID = &raw
		}

		scans = append(scans, ScanEventDTO{
			ID:         scan.ID().Bytes(),
			TaskID:     scan.TaskID().Bytes(),
			Barcode:    scan.Barcode(),
			ItemID:     itemID,
			Outcome:    int(scan.Outcome()),
			ActorID:    scan.ActorID().Bytes(),
			OccurredAt: scan.At(),
		})
	}

	decisions := make([]QADecisionDTO, 0, len(task.Decisions()))
	for _, decision := range task.Decisions() {
		decisions = append(decisions, QADecisionDTO{
			ID:         decision.ID().Bytes(),
			TaskID:     decision.TaskID().Bytes(),
			Decision:   int(decision.Decision()),
			Note:       decision.Note(),
			PhotoRef:   decision.PhotoRef(),
			ActorID:    decision.ActorID().Bytes(),
			OccurredAt: decision.At(),
		})
	}

	return TaskDTO{
		ID:          task.ID().Bytes(),
		TenantID:    task.TenantID().Bytes(),
		OrderID:     task.OrderID().Bytes(),
		CompletedAt: task.CompletedAt(),
		Version:     task.Version(),
		Manifest:    manifest,
		Scans:       scans,
		Decisions:   decisions,
	}
}

// toDomain converts a database DTO to a task aggregate using RestoreTask.
// Scan and decision logs must arrive ordered oldest first: the latest
// decision is authoritative and the domain takes the last element.
func toDomain(dto TaskDTO) (*assembly.Task, error) {
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

	manifest := make([]assembly.ManifestLine, 0, len(dto.Manifest))
	for _, lineDTO := range dto.Manifest {
		itemID, lineErr := kernel.UUIDFromBytes(lineDTO.ItemID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := assembly.RestoreManifestLine(
			itemID, lineDTO.Barcode, lineDTO.Description, lineDTO.Expected, lineDTO.Remaining)
		if lineErr != nil {
			return nil, lineErr
		}
		manifest = append(manifest, line)
	}

	scans := make([]assembly.ScanEvent, 0, len(dto.Scans))
	for _, scanDTO := range dto.Scans {
		scan, scanErr := scanToDomain(scanDTO)
		if scanErr != nil {
			return nil, scanErr
		}
		scans = append(scans, scan)
	}

	decisions := make([]assembly.QADecision, 0, len(dto.Decisions))
	for _, decisionDTO := range dto.Decisions {
		decision, decisionErr := decisionToDomain(decisionDTO)
		if decisionErr != nil {
			return nil, decisionErr
		}
		decisions = append(decisions, decision)
	}

	return assembly.RestoreTask(
		id, tenantID, orderID, manifest, scans, decisions, dto.CompletedAt, dto.Version)
}

func scanToDomain(dto ScanEventDTO) (assembly.ScanEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return assembly.ScanEvent{}, err
	}

	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return assembly.ScanEvent{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return assembly.ScanEvent{}, err
	}

	var itemID *kernel.UUID
	if dto.ItemID != nil {
		iID, itemErr := kernel.UUIDFromBytes((*dto.ItemID)[:])
		if itemErr != nil {
			return assembly.ScanEvent{}, itemErr
		}
		itemID = &iID
	}

	return assembly.RestoreScanEvent(
		id, taskID, dto.Barcode, itemID,
		assembly.MatchOutcome(dto.Outcome), actorID, dto.OccurredAt)
}

func decisionToDomain(dto QADecisionDTO) (assembly.QADecision, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return assembly.QADecision{}, err
	}

	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return assembly.QADecision{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return assembly.QADecision{}, err
	}

	return assembly.RestoreQADecision(
		id, taskID, assembly.DecisionType(dto.Decision),
		dto.Note, dto.PhotoRef, actorID, dto.OccurredAt)
}

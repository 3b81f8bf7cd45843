package assembly

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/errs"
)

var (
	// ErrTaskIsNotConstructed is returned when a Task instance was not
	// created through NewTask or RestoreTask.
	ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask")

	// ErrTaskAlreadyActive indicates an incomplete assembly task already
	// exists for the order. One active task per order at a time.
	ErrTaskAlreadyActive = errors.New("an incomplete assembly task already exists for this order")

	// ErrTaskNotReady indicates that QA or packing was attempted before
	// scan reconciliation (and, for packing, QA) completed.
	ErrTaskNotReady = errors.New("task is not ready")
)

// ManifestLine is one expected-item line of an assembly task: the barcode to
// reconcile against, the expected piece count, and how many pieces remain
// unscanned. remaining only ever decreases, and never below zero.
type ManifestLine struct {
	itemID      kernel.UUID
	barcode     string
	description string
	expected    int
	remaining   int
}

// RestoreManifestLine reconstructs a manifest line from persisted state.
func RestoreManifestLine(itemID kernel.UUID, barcode, description string, expected, remaining int) (ManifestLine, error) {
	if err := itemID.Validate(); err != nil {
		return ManifestLine{}, err
	}
	if barcode == "" {
		return ManifestLine{}, errs.NewValueIsRequiredError("barcode")
	}
	if expected <= 0 {
		return ManifestLine{}, errs.NewValueIsOutOfRangeError("expected", expected, 1, expected)
	}
	if remaining < 0 || remaining > expected {
		return ManifestLine{}, errs.NewValueIsOutOfRangeError("remaining", remaining, 0, expected)
	}

	return ManifestLine{
		itemID:      itemID,
		barcode:     barcode,
		description: description,
		expected:    expected,
		remaining:   remaining,
	}, nil
}

// ItemID returns the catalog identifier of the expected item.
func (l ManifestLine) ItemID() kernel.UUID { return l.itemID }

// Barcode returns the tag barcode the line is reconciled against.
func (l ManifestLine) Barcode() string { return l.barcode }

// Description returns the human-readable item description.
func (l ManifestLine) Description() string { return l.description }

// Expected returns the expected piece count.
func (l ManifestLine) Expected() int { return l.expected }

// Remaining returns how many pieces are still unscanned.
func (l ManifestLine) Remaining() int { return l.remaining }

// Task is the assembly aggregate: it reconciles scanned barcodes against the
// manifest snapshotted from the order's line items when the task was created.
//
// Task maintains these invariants:
//   - the manifest is fixed at creation; lines are never added or removed
//   - scans and QA decisions are append-only logs, never mutated
//   - a line's remaining count never goes negative; surplus scans are
//     reported as AlreadyScanned rather than double-counted
//   - completion (all remaining counts zero) is monotonic — there is no
//     reset operation
type Task struct {
	id          kernel.UUID
	tenantID    kernel.UUID
	orderID     kernel.UUID
	manifest    []ManifestLine
	scans       []ScanEvent
	decisions   []QADecision
	completedAt *time.Time
	version     int

	isConstructed bool
}

// NewTask creates an assembly task for an order, snapshotting its line items
// into the expected-item manifest.
func NewTask(id, tenantID kernel.UUID, o *order.Order) (*Task, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), o.Validate()); err != nil {
		return nil, err
	}

	items := o.Items()
	manifest := make([]ManifestLine, 0, len(items))
	for _, item := range items {
		line, err := RestoreManifestLine(
			item.ItemID(), item.Barcode(), item.Description(), item.Quantity(), item.Quantity())
		if err != nil {
			return nil, err
		}
		manifest = append(manifest, line)
	}

	return &Task{
		id:            id,
		tenantID:      tenantID,
		orderID:       o.ID(),
		manifest:      manifest,
		isConstructed: true,
	}, nil
}

// RestoreTask reconstructs a task from persisted state, including its scan
// and decision logs and optimistic-concurrency version.
func RestoreTask(
	id, tenantID, orderID kernel.UUID,
	manifest []ManifestLine,
	scans []ScanEvent,
	decisions []QADecision,
	completedAt *time.Time,
	version int,
) (*Task, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if len(manifest) == 0 {
		return nil, errs.NewValueIsRequiredError("manifest")
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("version")
	}

	return &Task{
		id:            id,
		tenantID:      tenantID,
		orderID:       orderID,
		manifest:      manifest,
		scans:         scans,
		decisions:     decisions,
		completedAt:   completedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Task instance was properly constructed.
func (t *Task) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

// ID returns the task's unique identifier.
func (t *Task) ID() kernel.UUID { return t.id }

// TenantID returns the owning tenant's identifier.
func (t *Task) TenantID() kernel.UUID { return t.tenantID }

// OrderID returns the order the task assembles.
func (t *Task) OrderID() kernel.UUID { return t.orderID }

// Manifest returns the expected-item lines.
func (t *Task) Manifest() []ManifestLine { return t.manifest }

// Scans returns the append-only scan event log.
func (t *Task) Scans() []ScanEvent { return t.scans }

// Decisions returns the append-only QA decision log.
func (t *Task) Decisions() []QADecision { return t.decisions }

// CompletedAt returns when reconciliation completed, or nil while items
// remain unscanned.
func (t *Task) CompletedAt() *time.Time { return t.completedAt }

// Version returns the optimistic-concurrency version loaded from storage.
func (t *Task) Version() int { return t.version }

// ScanResult is the outcome of matching one scanned barcode against the
// manifest.
type ScanResult struct {
	// ItemID identifies the matched manifest line; nil when the barcode is
	// not part of this order.
	ItemID *kernel.UUID

	// Outcome classifies the scan.
	Outcome MatchOutcome

	// Event is the appended scan record.
	Event ScanEvent
}

// Scan matches a barcode against the manifest and appends a scan event.
//
// Outcomes:
//   - Match: the barcode has unscanned pieces remaining; one is consumed.
//   - AlreadyScanned: the barcode's expected quantity is exhausted. A soft
//     outcome, not an error — scanning the same physical piece twice must
//     not double-count.
//   - Mismatch: the barcode does not belong to this order. The caller is
//     expected to raise an ItemMismatch exception.
//
// When the final remaining piece is consumed the task records its
// completion timestamp. Completion never reverts.
func (t *Task) Scan(barcode string, actorID kernel.UUID, at time.Time) (ScanResult, error) {
	if err := t.Validate(); err != nil {
		return ScanResult{}, err
	}
	if barcode == "" {
		return ScanResult{}, errs.NewValueIsRequiredError("barcode")
	}
	if err := actorID.Validate(); err != nil {
		return ScanResult{}, err
	}

	outcome := OutcomeMismatch
	var itemID *kernel.UUID
	for i := range t.manifest {
		line := &t.manifest[i]
		if line.barcode != barcode {
			continue
		}

		id := line.itemID
		itemID = &id
		if line.remaining > 0 {
			line.remaining--
			outcome = OutcomeMatch
		} else {
			outcome = OutcomeAlreadyScanned
		}
		break
	}

	event, err := NewScanEvent(t.id, barcode, itemID, outcome, actorID, at)
	if err != nil {
		return ScanResult{}, err
	}
	t.scans = append(t.scans, event)

	if outcome == OutcomeMatch && t.AllItemsProcessed() && t.completedAt == nil {
		completed := at
		t.completedAt = &completed
	}

	return ScanResult{ItemID: itemID, Outcome: outcome, Event: event}, nil
}

// AllItemsProcessed reports whether every manifest line's remaining count is
// zero. The predicate feeds the quality gate for the Assembly -> QA
// transition and is monotonic for a given task.
func (t *Task) AllItemsProcessed() bool {
	for _, line := range t.manifest {
		if line.remaining > 0 {
			return false
		}
	}
	return true
}

// ScannedCount returns how many expected pieces have been matched so far.
func (t *Task) ScannedCount() int {
	count := 0
	for _, line := range t.manifest {
		count += line.expected - line.remaining
	}
	return count
}

// ExpectedCount returns the total expected piece count of the manifest.
func (t *Task) ExpectedCount() int {
	count := 0
	for _, line := range t.manifest {
		count += line.expected
	}
	return count
}

// RecordDecision appends a QA decision to the task.
//
// Fails with ErrTaskNotReady while scan reconciliation is incomplete. A Fail
// decision does not block re-recording: operators re-run QA after
// remediation and the latest decision is authoritative for gate evaluation.
func (t *Task) RecordDecision(
	decision DecisionType, note, photoRef string, actorID kernel.UUID, at time.Time,
) (QADecision, error) {
	if err := t.Validate(); err != nil {
		return QADecision{}, err
	}
	if !t.AllItemsProcessed() {
		return QADecision{}, ErrTaskNotReady
	}

	qa, err := NewQADecision(t.id, decision, note, photoRef, actorID, at)
	if err != nil {
		return QADecision{}, err
	}

	t.decisions = append(t.decisions, qa)
	return qa, nil
}

// ActiveDecision returns the latest QA decision, or nil when none was
// recorded yet. Earlier decisions remain in the log but are superseded.
func (t *Task) ActiveDecision() *QADecision {
	if len(t.decisions) == 0 {
		return nil
	}
	latest := t.decisions[len(t.decisions)-1]
	return &latest
}

// ReadyToPack reports whether the task may produce a packing list: all
// items processed and the active QA decision is Pass.
func (t *Task) ReadyToPack() bool {
	if !t.AllItemsProcessed() {
		return false
	}
	active := t.ActiveDecision()
	return active != nil && active.Decision() == DecisionPass
}

package assembly

import (
	"errors"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// MatchOutcome classifies the result of matching one scanned barcode against
// the task manifest.
type MatchOutcome int

const (
	// OutcomeUnknown represents an invalid or undefined outcome.
	OutcomeUnknown MatchOutcome = iota

	// OutcomeMatch indicates the barcode matched a manifest line with
	// pieces remaining.
	OutcomeMatch

	// OutcomeAlreadyScanned indicates the barcode matched a manifest line
	// whose expected quantity was already fully scanned. A soft outcome:
	// the scan is logged but nothing is decremented.
	OutcomeAlreadyScanned

	// OutcomeMismatch indicates the barcode does not belong to the order,
	// either unknown entirely or from another order. Raises an
	// ItemMismatch exception.
	OutcomeMismatch
)

func getOutcomeStrings() map[MatchOutcome]string {
	return map[MatchOutcome]string{
		OutcomeUnknown:        "Unknown",
		OutcomeMatch:          "Match",
		OutcomeAlreadyScanned: "AlreadyScanned",
		OutcomeMismatch:       "Mismatch",
	}
}

// Validate checks if the MatchOutcome value is valid.
func (o MatchOutcome) Validate() error {
	if _, ok := getOutcomeStrings()[o]; !ok || o == OutcomeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("matchOutcome is invalid",
			fmt.Errorf("%d is not a valid match outcome", o))
	}
	return nil
}

// String returns the human-readable name of the outcome.
func (o MatchOutcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "Unknown"
}

// ErrScanEventIsNotConstructed is returned when a ScanEvent was not created
// via NewScanEvent or RestoreScanEvent.
var ErrScanEventIsNotConstructed = errors.New(
	"ScanEvent must be created via NewScanEvent or RestoreScanEvent")

// ScanEvent is an immutable append-only record of one barcode scan against
// an assembly task. Events are never mutated after creation; the manifest's
// remaining counts, not the event log, carry the reconciliation state.
type ScanEvent struct {
	id      kernel.UUID
	taskID  kernel.UUID
	barcode string
	itemID  *kernel.UUID
	outcome MatchOutcome
	actorID kernel.UUID
	at      time.Time

	isConstructed bool
}

// NewScanEvent creates a scan record. itemID is nil for mismatches.
func NewScanEvent(
	taskID kernel.UUID,
	barcode string,
	itemID *kernel.UUID,
	outcome MatchOutcome,
	actorID kernel.UUID,
	at time.Time,
) (ScanEvent, error) {
	if err := errors.Join(taskID.Validate(), outcome.Validate(), actorID.Validate()); err != nil {
		return ScanEvent{}, err
	}
	if barcode == "" {
		return ScanEvent{}, errs.NewValueIsRequiredError("barcode")
	}
	if at.IsZero() {
		return ScanEvent{}, errs.NewValueIsRequiredError("at")
	}

	return ScanEvent{
		id:            kernel.NewUUID(),
		taskID:        taskID,
		barcode:       barcode,
		itemID:        itemID,
		outcome:       outcome,
		actorID:       actorID,
		at:            at,
		isConstructed: true,
	}, nil
}

// RestoreScanEvent reconstructs a scan record from persisted state.
func RestoreScanEvent(
	id, taskID kernel.UUID,
	barcode string,
	itemID *kernel.UUID,
	outcome MatchOutcome,
	actorID kernel.UUID,
	at time.Time,
) (ScanEvent, error) {
	if err := errors.Join(id.Validate(), taskID.Validate(), actorID.Validate()); err != nil {
		return ScanEvent{}, err
	}

	return ScanEvent{
		id:            id,
		taskID:        taskID,
		barcode:       barcode,
		itemID:        itemID,
		outcome:       outcome,
		actorID:       actorID,
		at:            at,
		isConstructed: true,
	}, nil
}

// Validate ensures the event was created via a constructor.
func (e ScanEvent) Validate() error {
	if !e.isConstructed {
		return ErrScanEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e ScanEvent) ID() kernel.UUID { return e.id }

// TaskID returns the assembly task the scan belongs to.
func (e ScanEvent) TaskID() kernel.UUID { return e.taskID }

// Barcode returns the scanned barcode as read.
func (e ScanEvent) Barcode() string { return e.barcode }

// ItemID returns the matched manifest item, or nil for mismatches.
func (e ScanEvent) ItemID() *kernel.UUID { return e.itemID }

// Outcome returns the scan classification.
func (e ScanEvent) Outcome() MatchOutcome { return e.outcome }

// ActorID returns the operator who scanned.
func (e ScanEvent) ActorID() kernel.UUID { return e.actorID }

// At returns when the scan happened.
func (e ScanEvent) At() time.Time { return e.at }

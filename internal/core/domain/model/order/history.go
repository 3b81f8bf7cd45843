package order

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// ErrHistoryEntryIsNotConstructed is returned when a StatusHistoryEntry was
// not created via NewStatusHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New(
	"StatusHistoryEntry must be created via NewStatusHistoryEntry")

// StatusHistoryEntry is an immutable append-only record of one status
// transition. The sequence of entries for an order forms a walk over the
// status graph; entries recording an administrative correction that is not a
// graph edge must carry the override flag.
type StatusHistoryEntry struct {
	id       kernel.UUID
	orderID  kernel.UUID
	from     Status
	to       Status
	actorID  kernel.UUID
	at       time.Time
	note     string
	override bool

	isConstructed bool
}

// NewStatusHistoryEntry creates a history record for a transition performed
// through the status graph.
func NewStatusHistoryEntry(
	orderID kernel.UUID,
	from, to Status,
	actorID kernel.UUID,
	at time.Time,
	note string,
) (StatusHistoryEntry, error) {
	return newHistoryEntry(orderID, from, to, actorID, at, note, false)
}

// NewOverrideHistoryEntry creates a history record for an administrative
// correction. The from/to pair is not required to be a graph edge, but the
// entry is permanently tagged as an override.
func NewOverrideHistoryEntry(
	orderID kernel.UUID,
	from, to Status,
	actorID kernel.UUID,
	at time.Time,
	note string,
) (StatusHistoryEntry, error) {
	return newHistoryEntry(orderID, from, to, actorID, at, note, true)
}

func newHistoryEntry(
	orderID kernel.UUID,
	from, to Status,
	actorID kernel.UUID,
	at time.Time,
	note string,
	override bool,
) (StatusHistoryEntry, error) {
	if err := errors.Join(
		orderID.Validate(),
		from.Validate(),
		to.Validate(),
		actorID.Validate(),
	); err != nil {
		return StatusHistoryEntry{}, err
	}
	if at.IsZero() {
		return StatusHistoryEntry{}, errs.NewValueIsRequiredError("at")
	}
	if !override && !from.CanTransitionTo(to) {
		return StatusHistoryEntry{}, NewInvalidTransitionError(from, to)
	}

	return StatusHistoryEntry{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		from:          from,
		to:            to,
		actorID:       actorID,
		at:            at,
		note:          note,
		override:      override,
		isConstructed: true,
	}, nil
}

// RestoreStatusHistoryEntry reconstructs a history record from persisted
// state without re-checking the graph: the edge set may have evolved since
// the entry was written, and history is immutable.
func RestoreStatusHistoryEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	from, to Status,
	actorID kernel.UUID,
	at time.Time,
	note string,
	override bool,
) (StatusHistoryEntry, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), actorID.Validate()); err != nil {
		return StatusHistoryEntry{}, err
	}

	return StatusHistoryEntry{
		id:            id,
		orderID:       orderID,
		from:          from,
		to:            to,
		actorID:       actorID,
		at:            at,
		note:          note,
		override:      override,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created via a constructor.
func (e StatusHistoryEntry) Validate() error {
	if !e.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e StatusHistoryEntry) ID() kernel.UUID { return e.id }

// OrderID returns the identifier of the order the entry belongs to.
func (e StatusHistoryEntry) OrderID() kernel.UUID { return e.orderID }

// From returns the status the order left.
func (e StatusHistoryEntry) From() Status { return e.from }

// To returns the status the order entered.
func (e StatusHistoryEntry) To() Status { return e.to }

// ActorID returns the operator who performed the transition.
func (e StatusHistoryEntry) ActorID() kernel.UUID { return e.actorID }

// At returns when the transition happened.
func (e StatusHistoryEntry) At() time.Time { return e.at }

// Note returns the optional operator note.
func (e StatusHistoryEntry) Note() string { return e.note }

// IsOverride reports whether the entry records an administrative correction
// rather than a graph transition.
func (e StatusHistoryEntry) IsOverride() bool { return e.override }

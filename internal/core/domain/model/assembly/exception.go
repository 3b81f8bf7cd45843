package assembly

import (
	"errors"
	"fmt"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

var (
	// ErrExceptionIsNotConstructed is returned when an Exception was not
	// created via NewException or RestoreException.
	ErrExceptionIsNotConstructed = errors.New(
		"Exception must be created via NewException or RestoreException")

	// ErrExceptionAlreadyResolved indicates a resolution was already
	// recorded. Resolution is one-way and the original record is never
	// altered.
	ErrExceptionAlreadyResolved = errors.New("exception is already resolved")
)

// ExceptionKind classifies an assembly or QA exception.
type ExceptionKind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown ExceptionKind = iota

	// KindItemMismatch indicates a scanned barcode did not belong to the
	// order. Raised automatically by scan reconciliation.
	KindItemMismatch

	// KindMissingItem indicates an expected piece could not be located.
	KindMissingItem

	// KindQAFail indicates a failed quality inspection.
	KindQAFail
)

func getKindStrings() map[ExceptionKind]string {
	return map[ExceptionKind]string{
		KindUnknown:      "Unknown",
		KindItemMismatch: "ItemMismatch",
		KindMissingItem:  "MissingItem",
		KindQAFail:       "QAFail",
	}
}

// Validate checks if the ExceptionKind value is valid.
func (k ExceptionKind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok || k == KindUnknown {
		return errs.NewValueIsInvalidErrorWithCause("exceptionKind is invalid",
			fmt.Errorf("%d is not a valid exception kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k ExceptionKind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Resolution records how and when an exception was resolved.
type Resolution struct {
	ResolverID kernel.UUID
	Text       string
	ResolvedAt time.Time
}

// Exception records an assembly or QA anomaly tied to a task. Its lifecycle
// is OPEN -> RESOLVED, one-way. Resolving is administrative bookkeeping
// only: it never advances order or task state — a human or a subsequent
// gate re-evaluation decides whether the workflow proceeds.
type Exception struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	taskID     kernel.UUID
	kind       ExceptionKind
	raisedAt   time.Time
	resolution *Resolution

	isConstructed bool
}

// NewException raises a new open exception for a task.
func NewException(
	id, tenantID, taskID kernel.UUID,
	kind ExceptionKind,
	raisedAt time.Time,
) (*Exception, error) {
	if err := errors.Join(
		id.Validate(), tenantID.Validate(), taskID.Validate(), kind.Validate(),
	); err != nil {
		return nil, err
	}
	if raisedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("raisedAt")
	}

	return &Exception{
		id:            id,
		tenantID:      tenantID,
		taskID:        taskID,
		kind:          kind,
		raisedAt:      raisedAt,
		isConstructed: true,
	}, nil
}

// RestoreException reconstructs an exception from persisted state.
func RestoreException(
	id, tenantID, taskID kernel.UUID,
	kind ExceptionKind,
	raisedAt time.Time,
	resolution *Resolution,
) (*Exception, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), taskID.Validate()); err != nil {
		return nil, err
	}

	return &Exception{
		id:            id,
		tenantID:      tenantID,
		taskID:        taskID,
		kind:          kind,
		raisedAt:      raisedAt,
		resolution:    resolution,
		isConstructed: true,
	}, nil
}

// Validate ensures the exception was created via a constructor.
func (e *Exception) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExceptionIsNotConstructed
	}
	return nil
}

// ID returns the exception's unique identifier.
func (e *Exception) ID() kernel.UUID { return e.id }

// TenantID returns the owning tenant's identifier.
func (e *Exception) TenantID() kernel.UUID { return e.tenantID }

// TaskID returns the assembly task the exception belongs to.
func (e *Exception) TaskID() kernel.UUID { return e.taskID }

// Kind returns the exception classification.
func (e *Exception) Kind() ExceptionKind { return e.kind }

// RaisedAt returns when the exception was raised.
func (e *Exception) RaisedAt() time.Time { return e.raisedAt }

// Resolution returns the resolution record, or nil while open.
func (e *Exception) Resolution() *Resolution { return e.resolution }

// IsResolved reports whether a resolution has been recorded.
func (e *Exception) IsResolved() bool { return e.resolution != nil }

// Resolve records the resolution. Fails with ErrExceptionAlreadyResolved on
// repeat calls, leaving the original resolution untouched.
func (e *Exception) Resolve(resolverID kernel.UUID, text string, at time.Time) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.resolution != nil {
		return ErrExceptionAlreadyResolved
	}
	if err := resolverID.Validate(); err != nil {
		return err
	}
	if text == "" {
		return errs.NewValueIsRequiredError("resolution")
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("resolvedAt")
	}

	e.resolution = &Resolution{
		ResolverID: resolverID,
		Text:       text,
		ResolvedAt: at,
	}
	return nil
}

package order

import (
	"errors"
	"fmt"

	"laundryops/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for transitions that are structurally
// illegal: the requested target is not an edge of the status graph from the
// current status. Quality gates are evaluated only after this check passes.
var ErrInvalidTransition = errors.New("invalid transition")

// Status represents the lifecycle state of a laundry order. It implements a
// state machine whose transitions follow the production workflow from intake
// through processing, assembly and delivery.
//
// State transitions (Cancelled is additionally reachable from every
// non-terminal status):
//
//	Draft ─> Intake ─> Preparation ─> Sorting ─> Washing ─> Finishing
//	                                                            │
//	              ┌─── rework ────┐                             v
//	Closed <─ Delivered <─ OutForDelivery <─ Ready <─ Packing <─┘(Assembly ─> QA)
//
// Status is a value object: transition legality is a pure lookup with no side
// effects. Edge absence means the transition is illegal regardless of gates;
// Closed and Cancelled are terminal with empty target sets.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a newly captured order.
	Draft

	// Intake indicates the order has been received at the counter and its
	// items registered.
	Intake

	// Preparation indicates items are being tagged and prepared for
	// processing.
	Preparation

	// Sorting indicates items are being sorted into processing batches.
	Sorting

	// Washing indicates items are in the wash cycle.
	Washing

	// Finishing indicates items are being dried, pressed or otherwise
	// finished.
	Finishing

	// Assembly indicates order items are being reconciled against the
	// order manifest by barcode scanning.
	Assembly

	// QA indicates the assembled order is under quality inspection.
	QA

	// Packing indicates the order is being packed for handover.
	Packing

	// Ready indicates the order is packed and awaiting pickup or dispatch.
	Ready

	// OutForDelivery indicates the order is on a delivery route.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	Delivered

	// Closed indicates the order is billed and archived. Terminal.
	Closed

	// Cancelled indicates the order was abandoned. Terminal, reachable
	// from every non-terminal status.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Draft:          "Draft",
		Intake:         "Intake",
		Preparation:    "Preparation",
		Sorting:        "Sorting",
		Washing:        "Washing",
		Finishing:      "Finishing",
		Assembly:       "Assembly",
		QA:             "QA",
		Packing:        "Packing",
		Ready:          "Ready",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Closed:         "Closed",
		Cancelled:      "Cancelled",
	}
}

// forwardEdges holds the workflow edges of the status graph, excluding the
// cancellation edges which are derived in getTransitions. QA lists Assembly
// as the rework edge for failed inspections.
func forwardEdges() map[Status][]Status {
	return map[Status][]Status{
		Draft:          {Intake},
		Intake:         {Preparation},
		Preparation:    {Sorting},
		Sorting:        {Washing},
		Washing:        {Finishing},
		Finishing:      {Assembly},
		Assembly:       {QA},
		QA:             {Packing, Assembly},
		Packing:        {Ready},
		Ready:          {OutForDelivery},
		OutForDelivery: {Delivered},
		Delivered:      {Closed},
		Closed:         {},
		Cancelled:      {},
	}
}

// getTransitions returns the complete adjacency table of the status graph:
// the forward edges plus a Cancelled edge from every non-terminal status.
func getTransitions() map[Status][]Status {
	transitions := forwardEdges()
	for status, targets := range transitions {
		if status.IsTerminal() {
			continue
		}
		transitions[status] = append(targets, Cancelled)
	}
	return transitions
}

// Validate checks if the Status value is one of the graph's nodes.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status has an empty target set.
// Closed and Cancelled are the only terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Closed || s == Cancelled
}

// AllowedTargets returns the set of statuses directly reachable from s.
// The result is empty for terminal and invalid statuses.
func (s Status) AllowedTargets() []Status {
	targets, ok := getTransitions()[s]
	if !ok {
		return nil
	}
	return targets
}

// CanTransitionTo reports whether target is an edge of the status graph
// from s. A structural check only; quality gates are evaluated separately.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range s.AllowedTargets() {
		if t == target {
			return true
		}
	}
	return false
}

// InvalidTransitionError reports a structurally illegal transition request.
// It unwraps to ErrInvalidTransition for errors.Is classification.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// source and target statuses.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

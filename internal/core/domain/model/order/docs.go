// Package order contains the order aggregate and its status state machine.
//
// Status models the directed graph of legal lifecycle transitions; Order is
// the aggregate root whose status only changes through TransitionTo; and
// StatusHistoryEntry is the immutable audit record appended alongside every
// successful transition. The package enforces structural legality only —
// quality gates, which veto structurally legal transitions based on assembly
// and QA state, live in the services package.
package order

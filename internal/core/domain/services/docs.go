// Package services provides domain services that coordinate logic spanning
// multiple aggregates.
//
// GateEvaluator implements the quality-gate registry of the order workflow:
// named preconditions registered per target status that can veto a
// structurally legal transition based on assembly and QA state. Targets
// without registered gates pass by default.
package services

// Package assembly contains the assembly task aggregate and its satellite
// records.
//
// Task reconciles barcode scans against the expected-item manifest
// snapshotted from the order; ScanEvent and QADecision are its append-only
// logs; Exception records mismatches and failed inspections with a one-way
// OPEN -> RESOLVED lifecycle; PackingList is the idempotent packing record
// derived from a completed task.
package assembly

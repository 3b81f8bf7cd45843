// Package errs provides standardized error types for the workflow core.
//
// Each error type follows the same pattern: a sentinel error variable for
// errors.Is classification, a struct type carrying the error details, paired
// constructors with and without a cause, and Error/Unwrap methods. Recoverable
// workflow outcomes (not found, concurrent conflict, invalid value) are always
// reported through one of these types so the HTTP adapter can map them to
// actionable responses instead of generic failures.
package errs

// Package guard implements the constructor-guard pattern used by commands and
// value objects to reject zero-value instances that bypassed their
// constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// was not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through their designated
// constructor from zero values. Embedding a guard and checking it in Validate
// keeps invariant-enforcing constructors from being bypassed by struct
// literals.
//
// Example:
//
//	type ScanItemCommand struct {
//	    barcode string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewScanItemCommand(barcode string) (ScanItemCommand, error) {
//	    if barcode == "" {
//	        return ScanItemCommand{}, errors.New("barcode is required")
//	    }
//	    return ScanItemCommand{barcode: barcode, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ScanItemCommand) Validate() error {
//	    return c.guard.Validate(ErrScanItemCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly
// constructed. Call it only from the holder's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed holders. Zero-value holders
// fail with validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

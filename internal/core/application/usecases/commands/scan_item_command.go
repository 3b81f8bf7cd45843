package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

// ErrScanItemCommandIsNotConstructed is returned when the command was not
// created via NewScanItemCommand.
var ErrScanItemCommandIsNotConstructed = errors.New(
	"ScanItemCommand must be created via NewScanItemCommand")

// ScanItemCommand represents one barcode scan against an assembly task.
type ScanItemCommand struct { //nolint:recvcheck //using for validation
	taskID   kernel.UUID
	tenantID kernel.UUID
	barcode  string
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewScanItemCommand creates a validated scan request.
func NewScanItemCommand(taskID, tenantID kernel.UUID, barcode string, actorID kernel.UUID) (ScanItemCommand, error) {
	cmd := ScanItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		taskID.Validate(),
		tenantID.Validate(),
		actorID.Validate(),
	); err != nil {
		return ScanItemCommand{}, err
	}
	if barcode == "" {
		return ScanItemCommand{}, errs.NewValueIsRequiredError("barcode")
	}

	cmd.taskID = taskID
	cmd.tenantID = tenantID
	cmd.barcode = barcode
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScanItemCommand) Validate() error {
	return c.guard.Validate(ErrScanItemCommandIsNotConstructed)
}

// TaskID returns the assembly task being reconciled.
func (c ScanItemCommand) TaskID() kernel.UUID {
	return c.taskID
}

// TenantID returns the tenant scope of the request.
func (c ScanItemCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Barcode returns the scanned barcode as read by the device.
func (c ScanItemCommand) Barcode() string {
	return c.barcode
}

// ActorID returns the scanning operator.
func (c ScanItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

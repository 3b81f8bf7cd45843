package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

// ErrPackOrderCommandIsNotConstructed is returned when the command was not
// created via NewPackOrderCommand.
var ErrPackOrderCommandIsNotConstructed = errors.New(
	"PackOrderCommand must be created via NewPackOrderCommand")

// PackOrderCommand represents a request to generate a packing list for a
// completed assembly task.
type PackOrderCommand struct { //nolint:recvcheck //using for validation
	taskID        kernel.UUID
	tenantID      kernel.UUID
	packagingType string
	note          string
	actorID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewPackOrderCommand creates a validated packing request.
func NewPackOrderCommand(
	taskID, tenantID kernel.UUID,
	packagingType, note string,
	actorID kernel.UUID,
) (PackOrderCommand, error) {
	cmd := PackOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		taskID.Validate(),
		tenantID.Validate(),
		actorID.Validate(),
	); err != nil {
		return PackOrderCommand{}, err
	}
	if packagingType == "" {
		return PackOrderCommand{}, errs.NewValueIsRequiredError("packagingType")
	}

	cmd.taskID = taskID
	cmd.tenantID = tenantID
	cmd.packagingType = packagingType
	cmd.note = note
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PackOrderCommand) Validate() error {
	return c.guard.Validate(ErrPackOrderCommandIsNotConstructed)
}

// TaskID returns the assembly task to pack.
func (c PackOrderCommand) TaskID() kernel.UUID {
	return c.taskID
}

// TenantID returns the tenant scope of the request.
func (c PackOrderCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// PackagingType returns the packaging type code.
func (c PackOrderCommand) PackagingType() string {
	return c.packagingType
}

// Note returns the optional packing note.
func (c PackOrderCommand) Note() string {
	return c.note
}

// ActorID returns the packing operator.
func (c PackOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/guard"
)

// ErrCreateAssemblyTaskCommandIsNotConstructed is returned when the command
// was not created via NewCreateAssemblyTaskCommand.
var ErrCreateAssemblyTaskCommandIsNotConstructed = errors.New(
	"CreateAssemblyTaskCommand must be created via NewCreateAssemblyTaskCommand")

// CreateAssemblyTaskCommand represents a request to open an assembly task
// for an order, snapshotting its line items into the expected-item manifest.
type CreateAssemblyTaskCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateAssemblyTaskCommand creates a validated task creation request.
func NewCreateAssemblyTaskCommand(orderID, tenantID, actorID kernel.UUID) (CreateAssemblyTaskCommand, error) {
	cmd := CreateAssemblyTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
		actorID.Validate(),
	); err != nil {
		return CreateAssemblyTaskCommand{}, err
	}

	cmd.orderID = orderID
	cmd.tenantID = tenantID
	cmd.actorID = actorID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAssemblyTaskCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssemblyTaskCommandIsNotConstructed)
}

// OrderID returns the order to assemble.
func (c CreateAssemblyTaskCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the tenant scope of the request.
func (c CreateAssemblyTaskCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// ActorID returns the operator opening the task.
func (c CreateAssemblyTaskCommand) ActorID() kernel.UUID {
	return c.actorID
}

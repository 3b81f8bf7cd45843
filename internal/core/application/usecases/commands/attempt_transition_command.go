package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/pkg/guard"
)

// ErrAttemptTransitionCommandIsNotConstructed is returned when the command
// was not created via NewAttemptTransitionCommand.
var ErrAttemptTransitionCommandIsNotConstructed = errors.New(
	"AttemptTransitionCommand must be created via NewAttemptTransitionCommand")

// AttemptTransitionCommand represents a request to move an order to a target
// status. The handler decides between no-op, invalid transition, gate block,
// and a committed status change with its history record.
type AttemptTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	tenantID kernel.UUID
	target   order.Status
	actorID  kernel.UUID
	note     string

	guard guard.ConstructorGuard
}

// NewAttemptTransitionCommand creates a validated transition request.
// The target must be a node of the status graph; whether it is reachable
// from the order's current status is decided by the handler.
func NewAttemptTransitionCommand(
	orderID, tenantID kernel.UUID,
	target order.Status,
	actorID kernel.UUID,
	note string,
) (AttemptTransitionCommand, error) {
	cmd := AttemptTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTenantID(tenantID),
		cmd.setTarget(target),
		cmd.setActorID(actorID),
	); err != nil {
		return AttemptTransitionCommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttemptTransitionCommand) Validate() error {
	return c.guard.Validate(ErrAttemptTransitionCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c AttemptTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the tenant scope of the request.
func (c AttemptTransitionCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Target returns the requested target status.
func (c AttemptTransitionCommand) Target() order.Status {
	return c.target
}

// ActorID returns the operator requesting the transition.
func (c AttemptTransitionCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Note returns the optional operator note for the history entry.
func (c AttemptTransitionCommand) Note() string {
	return c.note
}

func (c *AttemptTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AttemptTransitionCommand) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	c.tenantID = tenantID
	return nil
}

func (c *AttemptTransitionCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *AttemptTransitionCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

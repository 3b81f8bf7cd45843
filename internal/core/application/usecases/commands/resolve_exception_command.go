package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

// ErrResolveExceptionCommandIsNotConstructed is returned when the command
// was not created via NewResolveExceptionCommand.
var ErrResolveExceptionCommandIsNotConstructed = errors.New(
	"ResolveExceptionCommand must be created via NewResolveExceptionCommand")

// ResolveExceptionCommand represents a request to close an open exception.
type ResolveExceptionCommand struct { //nolint:recvcheck //using for validation
	exceptionID kernel.UUID
	tenantID    kernel.UUID
	resolution  string
	resolverID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveExceptionCommand creates a validated resolution request.
func NewResolveExceptionCommand(
	exceptionID, tenantID kernel.UUID,
	resolution string,
	resolverID kernel.UUID,
) (ResolveExceptionCommand, error) {
	cmd := ResolveExceptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		exceptionID.Validate(),
		tenantID.Validate(),
		resolverID.Validate(),
	); err != nil {
		return ResolveExceptionCommand{}, err
	}
	if resolution == "" {
		return ResolveExceptionCommand{}, errs.NewValueIsRequiredError("resolution")
	}

	cmd.exceptionID = exceptionID
	cmd.tenantID = tenantID
	cmd.resolution = resolution
	cmd.resolverID = resolverID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveExceptionCommand) Validate() error {
	return c.guard.Validate(ErrResolveExceptionCommandIsNotConstructed)
}

// ExceptionID returns the exception being resolved.
func (c ResolveExceptionCommand) ExceptionID() kernel.UUID {
	return c.exceptionID
}

// TenantID returns the tenant scope of the request.
func (c ResolveExceptionCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// Resolution returns the free-text resolution note.
func (c ResolveExceptionCommand) Resolution() string {
	return c.resolution
}

// ResolverID returns the resolving operator.
func (c ResolveExceptionCommand) ResolverID() kernel.UUID {
	return c.resolverID
}

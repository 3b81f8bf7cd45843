package commands

import (
	"errors"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
	"laundryops/internal/pkg/guard"
)

// ErrAssignRouteCommandIsNotConstructed is returned when the command was not
// created via NewAssignRouteCommand.
var ErrAssignRouteCommandIsNotConstructed = errors.New(
	"AssignRouteCommand must be created via NewAssignRouteCommand")

// AssignRouteCommand represents a request to place an order on a delivery
// route.
type AssignRouteCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	tenantID  kernel.UUID
	routeCode string

	guard guard.ConstructorGuard
}

// NewAssignRouteCommand creates a validated route assignment request.
func NewAssignRouteCommand(orderID, tenantID kernel.UUID, routeCode string) (AssignRouteCommand, error) {
	cmd := AssignRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		tenantID.Validate(),
	); err != nil {
		return AssignRouteCommand{}, err
	}
	if routeCode == "" {
		return AssignRouteCommand{}, errs.NewValueIsRequiredError("routeCode")
	}

	cmd.orderID = orderID
	cmd.tenantID = tenantID
	cmd.routeCode = routeCode
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignRouteCommandIsNotConstructed)
}

// OrderID returns the order to route.
func (c AssignRouteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TenantID returns the tenant scope of the request.
func (c AssignRouteCommand) TenantID() kernel.UUID {
	return c.tenantID
}

// RouteCode returns the target route.
func (c AssignRouteCommand) RouteCode() string {
	return c.routeCode
}

// Package route contains the delivery-route assignment record, the thin
// downstream peer of packing.
package route

import (
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/pkg/errs"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not
// created via NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or RestoreAssignment")

// Assignment places one order on a delivery route at a stop position.
// Positions on a route are assigned sequentially starting at 1; an order is
// assigned to at most one route, and re-assigning it is a no-op handled by
// the command layer.
type Assignment struct {
	id         kernel.UUID
	tenantID   kernel.UUID
	orderID    kernel.UUID
	routeCode  string
	position   int
	assignedAt time.Time

	isConstructed bool
}

// NewAssignment creates a route assignment. position must be the next free
// position on the route, determined by the caller within the same
// transaction.
func NewAssignment(
	id, tenantID, orderID kernel.UUID,
	routeCode string,
	position int,
	assignedAt time.Time,
) (*Assignment, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if routeCode == "" {
		return nil, errs.NewValueIsRequiredError("routeCode")
	}
	if position < 1 {
		return nil, errs.NewValueIsOutOfRangeError("position", position, 1, position)
	}
	if assignedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("assignedAt")
	}

	return &Assignment{
		id:            id,
		tenantID:      tenantID,
		orderID:       orderID,
		routeCode:     routeCode,
		position:      position,
		assignedAt:    assignedAt,
		isConstructed: true,
	}, nil
}

// RestoreAssignment reconstructs a route assignment from persisted state.
func RestoreAssignment(
	id, tenantID, orderID kernel.UUID,
	routeCode string,
	position int,
	assignedAt time.Time,
) (*Assignment, error) {
	if err := errors.Join(id.Validate(), tenantID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	return &Assignment{
		id:            id,
		tenantID:      tenantID,
		orderID:       orderID,
		routeCode:     routeCode,
		position:      position,
		assignedAt:    assignedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the assignment was created via a constructor.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID { return a.id }

// TenantID returns the owning tenant's identifier.
func (a *Assignment) TenantID() kernel.UUID { return a.tenantID }

// OrderID returns the assigned order.
func (a *Assignment) OrderID() kernel.UUID { return a.orderID }

// RouteCode returns the route the order rides on.
func (a *Assignment) RouteCode() string { return a.routeCode }

// Position returns the order's stop position on the route.
func (a *Assignment) Position() int { return a.position }

// AssignedAt returns when the assignment was made.
func (a *Assignment) AssignedAt() time.Time { return a.assignedAt }

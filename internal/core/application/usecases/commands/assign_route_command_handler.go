package commands

import (
	"context"
	"errors"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/model/route"
	"laundryops/internal/pkg/errs"
)

// AssignRouteResult carries the assignment, whether freshly made or returned
// from an earlier call.
type AssignRouteResult struct {
	AssignmentID kernel.UUID
	RouteCode    string
	Position     int

	// AlreadyAssigned reports that the order was routed before and the
	// existing assignment was returned.
	AlreadyAssigned bool
}

// AssignRouteCommandHandler places Ready orders on delivery routes.
// Assignment is idempotent per order: re-assigning returns the existing
// assignment untouched, regardless of the requested route.
type AssignRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	now        func() time.Time
}

// NewAssignRouteCommandHandler creates a handler for route assignment.
func NewAssignRouteCommandHandler(uowFactory RouteUoWFactory) AssignRouteCommandHandler {
	return AssignRouteCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the route assignment command. Stop positions are handed
// out sequentially per route; NextPosition and Add run in one transaction so
// two concurrent assignments cannot claim the same position.
func (h AssignRouteCommandHandler) Handle(ctx context.Context, cmd AssignRouteCommand) (AssignRouteResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignRouteResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignRouteResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.TenantID(), cmd.OrderID())
	if err != nil {
		return AssignRouteResult{}, err
	}

	routeRepo := uow.RouteAssignmentRepository()
	existing, err := routeRepo.GetByOrder(ctx, cmd.TenantID(), cmd.OrderID())
	if err == nil {
		return AssignRouteResult{
			AssignmentID:    existing.ID(),
			RouteCode:       existing.RouteCode(),
			Position:        existing.Position(),
			AlreadyAssigned: true,
		}, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return AssignRouteResult{}, err
	}

	if o.Status() != order.Ready {
		return AssignRouteResult{}, errs.NewValueIsInvalidError(
			"order is not ready for route assignment")
	}

	position, err := routeRepo.NextPosition(ctx, cmd.TenantID(), cmd.RouteCode())
	if err != nil {
		return AssignRouteResult{}, err
	}

	assignment, err := route.NewAssignment(
		kernel.NewUUID(), cmd.TenantID(), cmd.OrderID(), cmd.RouteCode(), position, h.now())
	if err != nil {
		return AssignRouteResult{}, err
	}

	if err = routeRepo.Add(ctx, assignment); err != nil {
		return AssignRouteResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignRouteResult{}, err
	}

	return AssignRouteResult{
		AssignmentID: assignment.ID(),
		RouteCode:    assignment.RouteCode(),
		Position:     assignment.Position(),
	}, nil
}

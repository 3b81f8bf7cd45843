package jobs

import (
	"context"
	"log/slog"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// RouteAssignmentJob sweeps Ready orders onto the default delivery route.
// Runs every 30 seconds; the workflow core itself stays request-driven and
// the job is an outer-layer caller like any other.
type RouteAssignmentJob struct {
	readyOrdersHandler queries.GetUnroutedReadyOrdersQueryHandler
	assignHandler      commands.AssignRouteCommandHandler
	defaultRoute       string
	cron               *cron.Cron
	logger             *slog.Logger
}

// NewRouteAssignmentJob creates a new job for sweeping Ready orders onto
// defaultRoute.
func NewRouteAssignmentJob(
	readyOrdersHandler queries.GetUnroutedReadyOrdersQueryHandler,
	assignHandler commands.AssignRouteCommandHandler,
	defaultRoute string,
	logger *slog.Logger,
) *RouteAssignmentJob {
	return &RouteAssignmentJob{
		readyOrdersHandler: readyOrdersHandler,
		assignHandler:      assignHandler,
		defaultRoute:       defaultRoute,
		cron:               cron.New(),
		logger:             logger.With("component", "route_assignment_job"),
	}
}

// Start begins the route assignment sweep on a 30 second schedule.
func (j *RouteAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("@every 30s", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route assignment job started (running every 30s)")
	return nil
}

// Stop stops the route assignment sweep.
func (j *RouteAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Route assignment job stopped")
}

// sweep assigns every unrouted Ready order to the default route. A failing
// order is logged and skipped; the sweep picks it up again next round.
func (j *RouteAssignmentJob) sweep() {
	ctx := context.Background()

	orders, err := j.readyOrdersHandler.Handle(ctx, queries.NewGetUnroutedReadyOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Route assignment sweep failed to list orders", "error", err)
		return
	}

	for _, o := range orders {
		cmd, cmdErr := commands.NewAssignRouteCommand(o.OrderID, o.TenantID, j.defaultRoute)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Route assignment sweep built invalid command",
				"order_id", o.OrderID.String(), "error", cmdErr)
			continue
		}

		result, assignErr := j.assignHandler.Handle(ctx, cmd)
		if assignErr != nil {
			j.logger.ErrorContext(ctx, "Route assignment failed",
				"order_id", o.OrderID.String(), "error", assignErr)
			continue
		}

		if !result.AlreadyAssigned {
			j.logger.InfoContext(ctx, "Order assigned to route",
				"order_id", o.OrderID.String(),
				"route", result.RouteCode,
				"position", result.Position)
		}
	}
}

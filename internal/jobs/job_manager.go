package jobs

import (
	"fmt"
	"log/slog"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	routeAssignmentJob *RouteAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	readyOrdersHandler queries.GetUnroutedReadyOrdersQueryHandler,
	assignRouteHandler commands.AssignRouteCommandHandler,
	defaultRoute string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		routeAssignmentJob: NewRouteAssignmentJob(
			readyOrdersHandler, assignRouteHandler, defaultRoute, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.routeAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start route assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.routeAssignmentJob.Stop()
}

// Package jobs provides scheduled background tasks for the workflow core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. RouteAssignmentJob - Runs every 30 seconds to place Ready orders on the
// day's default delivery route
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(readyOrdersHandler, assignRouteHandler, "R-DEFAULT", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep is idempotent: an order already routed is skipped by the query,
// and racing assignments settle on the existing one. Per-order failures are
// logged and do not stop the rest of the sweep.
package jobs

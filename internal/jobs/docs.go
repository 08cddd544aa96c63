// Package jobs provides scheduled background tasks for the tracking engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the live-tracking simulator.
//
// # Available Jobs
//
// 1. AssociateMovementJob - Runs every second to nudge active delivery
// associates around the service area and broadcast their new positions
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(moveAssociatesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The movement job uses the cron expression "* * * * * *" which means it runs
// every second. This frequency keeps the simulated positions fresh enough for
// the websocket feed to look live.
//
// # Error Handling
//
// Movement job logs all errors as they indicate system issues.
package jobs

// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. EventRelayJob - Runs every second to publish committed domain events
// from the transactional outbox.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outboxRepo, publisher, logger)
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
// The relay job uses the cron expression "* * * * * *" which means it runs
// every second, keeping event delivery latency low.
//
// # Error Handling
//
// A message that fails to publish stays unpublished and is retried on the
// next tick. Messages are marked published one by one, so delivery is
// at-least-once and consumers must tolerate duplicates.
package jobs

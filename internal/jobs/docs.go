// Package jobs provides scheduled background tasks for the distribution system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle service.
//
// # Available Jobs
//
// 1. NotificationRelayJob - Runs every five seconds to deliver staged
// status-change notifications from the outbox to the configured publisher
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(relayNotificationsHandler, logger)
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
// - The relay job ignores the expected empty-outbox case
// - Publish failures leave notifications pending; the next run retries them
package jobs

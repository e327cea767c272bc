// Package jobs provides scheduled background tasks for the ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob publishes the notifications that command handlers wrote to the
// outbox in the same transaction as their state change. Each tick relays full
// batches until the outbox is drained. Messages are marked published only after
// the publisher accepted them, so subscribers may see a message more than once
// and must deduplicate by event ID.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, "*/5 * * * * *", 100, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron syntax with seconds. Overlapping ticks are
// skipped rather than queued.
//
// # Error Handling
//
// A failed round is logged and retried on the next tick; unpublished messages
// stay in the outbox.
package jobs

// Package jobs provides scheduled background tasks for the custody-chain
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. LedgerAnchorJob - Periodically digests every provenance entry recorded
// since the previous anchor and stores the resulting checkpoint. Anchors make
// silent rewrites of the ledger detectable: recomputing the digest over the
// covered range must reproduce the stored value.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(anchorLedgerHandler, "0 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A run that finds no new entries is a quiet no-op; real failures are logged
// and retried on the next tick. Failed job starts stop any already running
// jobs.
package jobs

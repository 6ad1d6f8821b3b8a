package jobs

import (
	"fmt"
	"log/slog"

	"agritrace/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	ledgerAnchorJob *LedgerAnchorJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	anchorLedgerHandler commands.AnchorLedgerCommandHandler,
	anchorSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ledgerAnchorJob: NewLedgerAnchorJob(anchorLedgerHandler, anchorSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.ledgerAnchorJob.Start(); err != nil {
		return fmt.Errorf("failed to start ledger anchor job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ledgerAnchorJob.Stop()
}

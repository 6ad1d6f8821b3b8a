package jobs

import (
	"context"
	"log/slog"

	"agritrace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LedgerAnchorJob periodically checkpoints the provenance ledger by digesting
// every entry recorded since the previous anchor.
type LedgerAnchorJob struct {
	handler  commands.AnchorLedgerCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewLedgerAnchorJob creates a new anchoring job with the given cron
// schedule (standard five-field expression).
func NewLedgerAnchorJob(
	handler commands.AnchorLedgerCommandHandler,
	schedule string,
	logger *slog.Logger,
) *LedgerAnchorJob {
	return &LedgerAnchorJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "ledger_anchor_job"),
	}
}

// Start begins the anchoring job on its configured schedule.
func (j *LedgerAnchorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewAnchorLedgerCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Ledger anchor command rejected", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Ledger anchor job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Ledger anchor job started", "schedule", j.schedule)
	return nil
}

// Stop stops the anchoring job.
func (j *LedgerAnchorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Ledger anchor job stopped")
}

package jobs

import (
	"context"
	"errors"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// SyncRunner runs one import.
type SyncRunner interface {
	Handle(ctx context.Context, cmd commands.SyncCommand) (commands.SyncReport, error)
}

// SyncJob imports products and orders on a cron schedule.
type SyncJob struct {
	runner   SyncRunner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSyncJob creates a job running a full sync on schedule.
func NewSyncJob(runner SyncRunner, schedule string, logger *slog.Logger) *SyncJob {
	return &SyncJob{
		runner:   runner,
		schedule: schedule,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "sync_job"),
	}
}

// Start validates the schedule and starts the scheduler.
func (j *SyncJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("SYNC_SCHEDULE", err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sync job started", "schedule", j.schedule)
	return nil
}

// Run performs one full sync and logs its outcome.
func (j *SyncJob) Run(ctx context.Context) {
	cmd, err := commands.NewSyncCommand(string(commands.SyncScopeAll))
	if err != nil {
		j.logger.ErrorContext(ctx, "Sync job failed", "error", err)
		return
	}

	report, err := j.runner.Handle(ctx, cmd)
	switch {
	case errors.Is(err, errs.ErrValueIsRequired):
		j.logger.WarnContext(ctx, "Sync job skipped", "reason", err)
	case err != nil:
		j.logger.ErrorContext(ctx, "Sync job failed", "error", err)
	default:
		attrs := []any{}
		if report.Products != nil {
			attrs = append(attrs, "imported", report.Products.Imported, "skipped", report.Products.Skipped)
		}
		if report.Orders != nil {
			attrs = append(attrs,
				"created", report.Orders.Created,
				"updated", report.Orders.Updated,
				"items_skipped", report.Orders.ItemsSkipped,
			)
		}
		j.logger.InfoContext(ctx, "Sync job finished", attrs...)
	}
}

// Stop stops the scheduler and waits for a running sync to return.
func (j *SyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Sync job stopped")
}

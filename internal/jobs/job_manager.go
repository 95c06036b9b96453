package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	syncJob *SyncJob
}

// NewJobManager creates a new job manager. An empty sync schedule leaves
// the sync job out.
func NewJobManager(syncRunner SyncRunner, syncSchedule string, logger *slog.Logger) *JobManager {
	jm := &JobManager{}
	if syncSchedule != "" {
		jm.syncJob = NewSyncJob(syncRunner, syncSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.syncJob == nil {
		return nil
	}
	if err := jm.syncJob.Start(); err != nil {
		return fmt.Errorf("failed to start sync job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.syncJob != nil {
		jm.syncJob.Stop()
	}
}

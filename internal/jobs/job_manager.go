package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dayRolloverJob *DayRolloverJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	rolloverDayHandler commands.RolloverDayCommandHandler,
	clock ports.Clock,
	location *time.Location,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dayRolloverJob: NewDayRolloverJob(rolloverDayHandler, clock, location, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dayRolloverJob.Start(); err != nil {
		return fmt.Errorf("failed to start day rollover job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dayRolloverJob.Stop()
}

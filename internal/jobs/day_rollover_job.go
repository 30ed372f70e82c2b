package jobs

import (
	"context"
	"log/slog"
	"time"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DayRolloverSchedule fires at every local midnight.
const DayRolloverSchedule = "0 0 * * *"

// DayRolloverJob tells the wizard when the calendar day changes, so that the
// new today becomes unavailable for pickup.
type DayRolloverJob struct {
	handler commands.RolloverDayCommandHandler
	clock   ports.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDayRolloverJob schedules the rollover in location, which must match the clock's time zone.
func NewDayRolloverJob(
	handler commands.RolloverDayCommandHandler,
	clock ports.Clock,
	location *time.Location,
	logger *slog.Logger,
) *DayRolloverJob {
	return &DayRolloverJob{
		handler: handler,
		clock:   clock,
		cron:    cron.New(cron.WithLocation(location)),
		logger:  logger.With("component", "day_rollover_job"),
	}
}

// Start registers the midnight run and starts the scheduler.
func (j *DayRolloverJob) Start() error {
	if _, err := j.cron.AddFunc(DayRolloverSchedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Day rollover job started", "schedule", DayRolloverSchedule)
	return nil
}

// Run performs one rollover to the clock's current day.
func (j *DayRolloverJob) Run() {
	ctx := context.Background()
	today := j.clock.Today()

	cmd, err := commands.NewRolloverDayCommand(today)
	if err != nil {
		j.logger.ErrorContext(ctx, "Day rollover job failed", "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Day rollover job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Calendar moved to a new day", "today", today.String())
}

// Stop stops the scheduler and waits for a running rollover to finish.
func (j *DayRolloverJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Day rollover job stopped")
}

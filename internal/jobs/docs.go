// Package jobs provides scheduled background tasks for the pickup service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3, and run in the
// business time zone rather than the host's.
//
// # Available Jobs
//
// 1. DayRolloverJob - Runs at local midnight and moves the wizard's calendar to the new day
//
// # Usage
//
//	jobManager := jobs.NewJobManager(rolloverDayHandler, clock, location, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed rollover is logged and retried at the next midnight; the wizard
// keeps working with the previous day until then.
package jobs

// Package jobs runs scheduled background work with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// DeliveryModeAssignmentJob picks a delivery mode for carts that offer modes
// but have none selected, using the checkout's default preferences. It runs
// every five seconds unless configured otherwise; schedules use the
// six-field cron syntax with seconds.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(logger,
//		jobs.NewDeliveryModeAssignmentJob(assignHandler, "*/5 * * * * *", logger))
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An empty batch (commands.ErrNoPendingCarts) is expected and not logged.
// Any other failure is logged and the job keeps its schedule. If one job
// fails to start, the jobs already started are stopped.
package jobs

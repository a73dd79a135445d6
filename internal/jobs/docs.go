// Package jobs provides scheduled background tasks for QuickBite.
//
// Jobs are built on github.com/robfig/cron/v3 with seconds precision.
//
// # Available Jobs
//
// DispatchBacklogJob - periodically lists ASSIGNED deliveries that no partner
// has accepted within a threshold and logs each one. It never changes state.
//
// # Usage
//
//	backlog := jobs.NewDispatchBacklogJob(staleHandler, "0 */1 * * * *", 10*time.Minute, time.Now, logger)
//	jobManager := jobs.NewJobManager(backlog)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed check is logged and retried on the next tick. A job that fails to
// start stops every job started before it.
package jobs

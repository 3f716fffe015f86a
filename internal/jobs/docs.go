// Package jobs provides scheduled background tasks for the orgchart service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and never touch the company directly: they call a small interface
// that the composition root implements with the shared lock held.
//
// # Available Jobs
//
//  1. SnapshotJob - saves the company through a Snapshotter
//  2. HeadcountReportJob - logs per-department headcount and payroll
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewSnapshotJob("0 */5 * * * *", 10*time.Second, snapshotter, logger),
//		jobs.NewHeadcountReportJob("0 0 * * * *", statsSource, logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing run is logged and the schedule continues. A job that cannot be
// scheduled makes StartAll stop the jobs it already started.
package jobs

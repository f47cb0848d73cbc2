// Package jobs provides scheduled background reports for the order lifecycle core.
//
// Jobs run on github.com/robfig/cron/v3 schedules with seconds precision and log
// through log/slog with a component attribute. Run counts, durations and report
// figures are exported as Prometheus metrics.
//
// # Available Jobs
//
//  1. DuePaymentReportJob logs every order whose payment is Due and the outstanding
//     total per order kind.
//  2. StaleOrderReportJob logs open orders created longer ago than a configured age.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(cfg, duePaymentsHandler, unfinishedOrdersHandler, metrics, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A job that fails to start stops the jobs already running.
package jobs

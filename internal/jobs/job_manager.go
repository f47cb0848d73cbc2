package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the cron schedules of the report jobs. Schedules use the six-field
// format with a leading seconds field.
type Config struct {
	PaymentReportSchedule    string
	StaleOrderReportSchedule string
	StaleOrderAge            time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	duePaymentReportJob *DuePaymentReportJob
	staleOrderReportJob *StaleOrderReportJob
}

func NewJobManager(
	cfg Config,
	duePayments duePaymentsReader,
	unfinishedOrders unfinishedOrdersReader,
	metrics *Metrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		duePaymentReportJob: NewDuePaymentReportJob(duePayments, cfg.PaymentReportSchedule, metrics, logger),
		staleOrderReportJob: NewStaleOrderReportJob(
			unfinishedOrders, cfg.StaleOrderReportSchedule, cfg.StaleOrderAge, metrics, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.duePaymentReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start due payment report job: %w", err)
	}

	if err := jm.staleOrderReportJob.Start(); err != nil {
		jm.duePaymentReportJob.Stop()
		return fmt.Errorf("failed to start stale order report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running reports to finish.
func (jm *JobManager) StopAll() {
	jm.staleOrderReportJob.Stop()
	jm.duePaymentReportJob.Stop()
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"supplychain/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type unfinishedOrdersReader interface {
	Handle(
		ctx context.Context,
		query queries.GetUnfinishedOrdersQuery,
	) ([]queries.GetUnfinishedOrdersQueryResponse, error)
}

// StaleOrderReportJob periodically warns about orders open for longer than maxAge.
type StaleOrderReportJob struct {
	reader   unfinishedOrdersReader
	schedule string
	maxAge   time.Duration
	metrics  *Metrics
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStaleOrderReportJob(
	reader unfinishedOrdersReader,
	schedule string,
	maxAge time.Duration,
	metrics *Metrics,
	logger *slog.Logger,
) *StaleOrderReportJob {
	return &StaleOrderReportJob{
		reader:   reader,
		schedule: schedule,
		maxAge:   maxAge,
		metrics:  metrics,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_order_report_job"),
	}
}

func (j *StaleOrderReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order report job started",
		"schedule", j.schedule, "max_age", j.maxAge.String())
	return nil
}

// Run logs every stale order and returns how many were found.
func (j *StaleOrderReportJob) Run(ctx context.Context) int {
	query, err := queries.NewGetUnfinishedOrdersQuery()
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order report failed", "error", err)
		return 0
	}

	t := j.metrics.track("stale_order_report")
	orders, err := j.reader.Handle(ctx, query)
	t.end(err)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order report failed", "error", err)
		return 0
	}

	cutoff := j.now().Add(-j.maxAge)
	stale := 0
	for _, o := range orders {
		if o.CreateTime.After(cutoff) {
			continue
		}
		stale++
		j.logger.WarnContext(ctx, "Order is stale",
			"order_id", o.ID.String(),
			"kind", o.Kind.String(),
			"status", o.Status.String(),
			"age", j.now().Sub(o.CreateTime).Round(time.Minute).String(),
		)
	}
	j.metrics.setStaleOrders(stale)

	return stale
}

func (j *StaleOrderReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale order report job stopped")
}

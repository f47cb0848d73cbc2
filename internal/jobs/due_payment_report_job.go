package jobs

import (
	"context"
	"log/slog"

	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

var reportedKinds = []order.Kind{order.KindPurchase, order.KindSales}

type duePaymentsReader interface {
	Handle(ctx context.Context, query queries.GetDuePaymentsQuery) ([]queries.GetDuePaymentsQueryResponse, error)
}

// DuePaymentReportJob periodically logs orders waiting for payment.
type DuePaymentReportJob struct {
	reader   duePaymentsReader
	schedule string
	metrics  *Metrics
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDuePaymentReportJob(
	reader duePaymentsReader,
	schedule string,
	metrics *Metrics,
	logger *slog.Logger,
) *DuePaymentReportJob {
	return &DuePaymentReportJob{
		reader:   reader,
		schedule: schedule,
		metrics:  metrics,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "due_payment_report_job"),
	}
}

func (j *DuePaymentReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Due payment report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report. Failures are logged, never returned.
func (j *DuePaymentReportJob) Run(ctx context.Context) {
	t := j.metrics.track("due_payment_report")
	payments, err := j.reader.Handle(ctx, queries.NewGetDuePaymentsQuery())
	t.end(err)
	if err != nil {
		j.logger.ErrorContext(ctx, "Due payment report failed", "error", err)
		return
	}
	sums := queries.SumDue(payments)
	for _, kind := range reportedKinds {
		j.metrics.setDuePayment(kind.String(), sums[kind].InexactFloat64())
	}

	if len(payments) == 0 {
		j.logger.DebugContext(ctx, "No due payments")
		return
	}

	for _, p := range payments {
		j.logger.InfoContext(ctx, "Payment due",
			"order_id", p.ID.String(),
			"kind", p.Kind.String(),
			"party_id", p.PartyID,
			"total_amount", p.TotalAmount.StringFixed(2),
		)
	}

	for _, kind := range reportedKinds {
		total, ok := sums[kind]
		if !ok {
			continue
		}
		j.logger.InfoContext(ctx, "Outstanding total", "kind", kind.String(), "total_amount", total.StringFixed(2))
	}
}

func (j *DuePaymentReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Due payment report job stopped")
}

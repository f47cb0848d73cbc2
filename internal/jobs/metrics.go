package jobs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for the report jobs. A nil *Metrics records nothing.
type Metrics struct {
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	duePayments *prometheus.GaugeVec
	staleOrders prometheus.Gauge
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "supplychain_jobs_total",
		Help: "Total report job executions partitioned by job name and status.",
	}, []string{"job", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "supplychain_job_duration_seconds",
		Help:    "Duration in seconds of report job executions.",
		Buckets: prometheus.DefBuckets,
	}, []string{"job"})
	duePayments := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "supplychain_due_payment_amount",
		Help: "Outstanding total of orders whose payment is due, by order kind.",
	}, []string{"kind"})
	staleOrders := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "supplychain_stale_orders",
		Help: "Open orders older than the configured stale age.",
	})
	registerer.MustRegister(runs, duration, duePayments, staleOrders)

	return &Metrics{runs: runs, duration: duration, duePayments: duePayments, staleOrders: staleOrders}
}

type tracker struct {
	metrics *Metrics
	job     string
	start   time.Time
}

func (m *Metrics) track(job string) tracker {
	return tracker{metrics: m, job: job, start: time.Now()}
}

func (t tracker) end(err error) {
	if t.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	t.metrics.runs.WithLabelValues(t.job, status).Inc()
	t.metrics.duration.WithLabelValues(t.job).Observe(time.Since(t.start).Seconds())
}

func (m *Metrics) setDuePayment(kind string, amount float64) {
	if m == nil {
		return
	}
	m.duePayments.WithLabelValues(kind).Set(amount)
}

func (m *Metrics) setStaleOrders(count int) {
	if m == nil {
		return
	}
	m.staleOrders.Set(float64(count))
}

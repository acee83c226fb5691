package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector receives measurements from the queues, engines and scheduler.
type Collector interface {
	RecordQueueDepth(queue string, depth int)
	RecordQueueWait(queue string, d time.Duration)
	RecordQueueRun(queue string, failed bool, d time.Duration)
	RecordOperation(engine, op, status string)
	RecordSchedulerRun(job string, failed bool)
}

// NoOp is used when metrics are not needed.
type NoOp struct{}

func (NoOp) RecordQueueDepth(string, int) {}
func (NoOp) RecordQueueWait(string, time.Duration) {}
func (NoOp) RecordQueueRun(string, bool, time.Duration) {}
func (NoOp) RecordOperation(string, string, string) {}
func (NoOp) RecordSchedulerRun(string, bool) {}

type Prometheus struct {
	queueDepth    *prometheus.GaugeVec
	queueWait     *prometheus.HistogramVec
	queueRun      *prometheus.HistogramVec
	queueFailures *prometheus.CounterVec
	operations    *prometheus.CounterVec
	schedulerRuns *prometheus.CounterVec
}

func NewPrometheus(namespace string) *Prometheus {
	return &Prometheus{
		queueDepth: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "queue_depth",
				Help:      "Units of work waiting in a serialized queue",
			},
			[]string{"queue"},
		),
		queueWait: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "queue_wait_seconds",
				Help:      "Time a unit of work spent waiting before execution",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"queue"},
		),
		queueRun: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "queue_run_seconds",
				Help:      "Execution time of a unit of work",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"queue"},
		),
		queueFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "queue_failures_total",
				Help:      "Units of work that returned an error",
			},
			[]string{"queue"},
		),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Engine operations by outcome status",
			},
			[]string{"engine", "op", "status"},
		),
		schedulerRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scheduler_runs_total",
				Help:      "Scheduled job executions",
			},
			[]string{"job", "result"},
		),
	}
}

// Register registers all collectors with the given registerer.
func (p *Prometheus) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		p.queueDepth, p.queueWait, p.queueRun, p.queueFailures, p.operations, p.schedulerRuns,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (p *Prometheus) RecordQueueDepth(queue string, depth int) {
	p.queueDepth.WithLabelValues(queue).Set(float64(depth))
}

func (p *Prometheus) RecordQueueWait(queue string, d time.Duration) {
	p.queueWait.WithLabelValues(queue).Observe(d.Seconds())
}

func (p *Prometheus) RecordQueueRun(queue string, failed bool, d time.Duration) {
	p.queueRun.WithLabelValues(queue).Observe(d.Seconds())
	if failed {
		p.queueFailures.WithLabelValues(queue).Inc()
	}
}

func (p *Prometheus) RecordOperation(engine, op, status string) {
	p.operations.WithLabelValues(engine, op, status).Inc()
}

func (p *Prometheus) RecordSchedulerRun(job string, failed bool) {
	result := "ok"
	if failed {
		result = "error"
	}
	p.schedulerRuns.WithLabelValues(job, result).Inc()
}

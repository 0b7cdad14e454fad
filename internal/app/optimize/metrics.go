package optimize

import (
	"github.com/airenas/workopt/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "workopt"

type serviceMetric struct {
	responseDur *prometheus.HistogramVec
	optimizeDur *prometheus.HistogramVec
	runs        *prometheus.CounterVec
	taskCount   prometheus.Histogram
}

func initMetrics(data *ServiceData) error {
	data.metrics.responseDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_durations_seconds",
			Help:      "Request latency distributions.",
		}, []string{"route"})
	err := metrics.Register(data.metrics.responseDur)
	if err != nil {
		return err
	}
	data.metrics.optimizeDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "optimization_duration_seconds",
			Help:      "Optimization duration by strategy",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"strategy"})
	err = metrics.Register(data.metrics.optimizeDur)
	if err != nil {
		return err
	}
	data.metrics.runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Optimization runs counter",
		}, []string{"strategy", "feasible"})
	err = metrics.Register(data.metrics.runs)
	if err != nil {
		return err
	}
	data.metrics.taskCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_tasks",
			Help:      "Number of tasks in one optimization run",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		})
	return metrics.Register(data.metrics.taskCount)
}

func (m *serviceMetric) route(name string) prometheus.ObserverVec {
	return m.responseDur.MustCurryWith(prometheus.Labels{"route": name})
}

package metrics

import (
	"reflect"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "checks"

// PrometheusRecorder implements Recorder with Prometheus
// collectors. Outcomes are labelled by status only; check names
// are generated at runtime and would make label cardinality
// unbounded.
type PrometheusRecorder struct {
	outcomes *prometheus.CounterVec
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPrometheusRecorder creates the collectors and registers them
// on registerer. A nil registerer yields a recorder that does
// nothing.
func NewPrometheusRecorder(
	registerer prometheus.Registerer,
) *PrometheusRecorder {
	if isNil(registerer) {
		return &PrometheusRecorder{}
	}

	r := &PrometheusRecorder{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outcomes_total",
			Help:      "Check outcomes by status.",
		}, []string{"status"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Runs by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duration_seconds",
			Help:      "Check action duration.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}

	registerer.MustRegister(r.outcomes, r.runs, r.duration)

	return r
}

// RecordOutcome increments the outcome counter and observes the
// duration.
func (r *PrometheusRecorder) RecordOutcome(
	_, status string,
	duration time.Duration,
) {
	if r.outcomes == nil {
		return
	}
	r.outcomes.WithLabelValues(status).Inc()
	r.duration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordRun increments the run counter.
func (r *PrometheusRecorder) RecordRun(result string) {
	if r.runs == nil {
		return
	}
	r.runs.WithLabelValues(result).Inc()
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

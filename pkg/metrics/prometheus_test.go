package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_RecordOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.RecordOutcome("a", "passed", 10*time.Millisecond)
	r.RecordOutcome("b", "passed", 20*time.Millisecond)
	r.RecordOutcome("c", "failed", time.Millisecond)

	assert.Equal(t, 2.0,
		testutil.ToFloat64(r.outcomes.WithLabelValues("passed")))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(r.outcomes.WithLabelValues("failed")))
	assert.Equal(t, 0.0,
		testutil.ToFloat64(r.outcomes.WithLabelValues("errored")))

	count, err := testutil.GatherAndCount(
		reg, "checks_duration_seconds",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPrometheusRecorder_RecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.RecordRun(RunCompleted)
	r.RecordRun(RunCompleted)
	r.RecordRun(RunSetupFailed)

	assert.Equal(t, 2.0,
		testutil.ToFloat64(r.runs.WithLabelValues(RunCompleted)))
	assert.Equal(t, 1.0,
		testutil.ToFloat64(r.runs.WithLabelValues(RunSetupFailed)))
}

func TestPrometheusRecorder_NilRegisterer(t *testing.T) {
	var reg *prometheus.Registry
	r := NewPrometheusRecorder(reg)

	assert.NotPanics(t, func() {
		r.RecordOutcome("a", "passed", time.Second)
		r.RecordRun(RunCompleted)
	})

	r = NewPrometheusRecorder(nil)
	assert.Nil(t, r.outcomes)
}

func TestPrometheusRecorder_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusRecorder(reg)

	assert.Panics(t, func() { NewPrometheusRecorder(reg) })
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	assert.NotPanics(t, func() {
		r.RecordOutcome("a", "passed", time.Second)
		r.RecordRun(RunCompleted)
	})
}

// Package metrics records check outcomes and run results.
package metrics

import "time"

// Run results passed to RecordRun.
const (
	RunCompleted   = "completed"
	RunSetupFailed = "setup_failed"
)

// Recorder defines the interface for recording run metrics.
type Recorder interface {
	// RecordOutcome records the outcome of one check.
	RecordOutcome(name, status string, duration time.Duration)
	// RecordRun records the end of a run with one of the Run*
	// constants.
	RecordRun(result string)
}

// NoopRecorder is a no-op implementation of Recorder.
type NoopRecorder struct{}

func (NoopRecorder) RecordOutcome(_, _ string, _ time.Duration) {}
func (NoopRecorder) RecordRun(_ string)                         {}

package runner

import (
	"digital.vasic.checks/pkg/logging"
	"digital.vasic.checks/pkg/metrics"
)

// RunnerOption configures a DefaultRunner.
type RunnerOption func(*DefaultRunner)

// WithExecutor sets the executor. A nil executor keeps the
// sequential default.
func WithExecutor(e Executor) RunnerOption {
	return func(r *DefaultRunner) {
		if e != nil {
			r.executor = e
		}
	}
}

// WithConcurrency is shorthand for a ParallelExecutor with the
// given limit.
func WithConcurrency(maxConcurrency int) RunnerOption {
	return WithExecutor(NewParallelExecutor(maxConcurrency))
}

// WithLogger sets the logger used by the runner.
func WithLogger(logger logging.Logger) RunnerOption {
	return func(r *DefaultRunner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder used by the runner.
func WithMetrics(m metrics.Recorder) RunnerOption {
	return func(r *DefaultRunner) {
		if m != nil {
			r.metrics = m
		}
	}
}

// WithObserver adds an observer notified of run state changes
// and check progress. A nil observer is ignored.
func WithObserver(o Observer) RunnerOption {
	return func(r *DefaultRunner) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

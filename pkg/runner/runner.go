// Package runner executes the checks computed by a generator and
// records one outcome per check. Checks run sequentially by
// default, or concurrently through a pluggable executor.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"digital.vasic.checks/pkg/check"
	"digital.vasic.checks/pkg/logging"
	"digital.vasic.checks/pkg/metrics"
)

var (
	errNilGenerator = errors.New("generator is nil")
	errGoexit       = errors.New("check called runtime.Goexit")
)

// Runner defines the interface for executing a generated set of
// checks.
type Runner interface {
	// Run invokes the generator once and executes every
	// descriptor it yields. It returns either a complete report
	// or a *check.RunSetupError, never both.
	Run(ctx context.Context, gen check.Generator) (*check.Report, error)
}

// Observer receives run lifecycle callbacks. With a parallel
// executor the check callbacks arrive from several goroutines.
type Observer interface {
	OnRunState(state check.RunState)
	OnCheckStarted(index int, name string)
	OnCheckFinished(index int, outcome check.Outcome)
}

// DefaultRunner is the standard Runner implementation. It holds
// no per-run state and may be used for concurrent runs.
type DefaultRunner struct {
	executor  Executor
	logger    logging.Logger
	metrics   metrics.Recorder
	observers []Observer
}

// NewRunner creates a DefaultRunner with the supplied options.
func NewRunner(opts ...RunnerOption) *DefaultRunner {
	r := &DefaultRunner{
		executor: SequentialExecutor{},
		logger:   logging.NullLogger{},
		metrics:  metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes gen with a default sequential runner.
func Run(
	ctx context.Context,
	gen check.Generator,
) (*check.Report, error) {
	return NewRunner().Run(ctx, gen)
}

// Run invokes the generator, then executes each descriptor
// through the executor. A check's failure or fault is recorded
// in its outcome and never stops the remaining checks.
func (r *DefaultRunner) Run(
	ctx context.Context,
	gen check.Generator,
) (*check.Report, error) {
	report := &check.Report{StartTime: time.Now()}

	r.transition(check.StateGenerating)
	descs, err := generate(gen)
	if err != nil {
		r.transition(check.StateSetupFailed)
		r.logger.Error("run_setup_failed", logging.ErrorField(err))
		r.metrics.RecordRun(metrics.RunSetupFailed)
		return nil, &check.RunSetupError{Cause: err}
	}

	r.logger.Info("run_started",
		logging.IntField("checks", len(descs)),
	)

	r.transition(check.StateExecuting)
	outcomes := r.executor.Execute(ctx, descs, r.executeCheck)
	if len(outcomes) != len(descs) {
		// Only a broken custom executor gets here.
		panic(fmt.Sprintf(
			"runner: executor returned %d outcomes for %d checks",
			len(outcomes), len(descs),
		))
	}

	report.Outcomes = outcomes
	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)

	r.transition(check.StateCompleted)
	counts := report.Counts()
	r.logger.Info("run_completed",
		logging.IntField("passed", counts.Passed),
		logging.IntField("failed", counts.Failed),
		logging.IntField("errored", counts.Errored),
		logging.DurationField("duration", report.Duration),
	)
	r.metrics.RecordRun(metrics.RunCompleted)

	return report, nil
}

// executeCheck runs one descriptor and classifies the result.
// It is the ExecFunc handed to the executor.
func (r *DefaultRunner) executeCheck(
	ctx context.Context,
	index int,
	desc check.Descriptor,
) check.Outcome {
	for _, o := range r.observers {
		o.OnCheckStarted(index, desc.Name())
	}

	start := time.Now()
	err := invoke(ctx, desc)
	outcome := check.Outcome{
		Name:      desc.Name(),
		StartTime: start,
		Duration:  time.Since(start),
	}

	if err == nil {
		outcome.Status = check.StatusPassed
	} else if af, ok := check.AsAssertionFailure(err); ok {
		outcome.Status = check.StatusFailed
		outcome.Message = af.Message
	} else {
		outcome.Status = check.StatusErrored
		outcome.Message = err.Error()
	}

	r.logger.Debug("check_finished",
		logging.IntField("index", index),
		logging.StringField("check", outcome.Name),
		logging.StringField("status", string(outcome.Status)),
		logging.DurationField("duration", outcome.Duration),
	)
	r.metrics.RecordOutcome(
		outcome.Name, string(outcome.Status), outcome.Duration,
	)
	for _, o := range r.observers {
		o.OnCheckFinished(index, outcome)
	}

	return outcome
}

func (r *DefaultRunner) transition(state check.RunState) {
	for _, o := range r.observers {
		o.OnRunState(state)
	}
}

// generate calls gen, turning a panic into an error.
func generate(gen check.Generator) (descs []check.Descriptor, err error) {
	if gen == nil {
		return nil, errNilGenerator
	}
	defer func() {
		if v := recover(); v != nil {
			descs = nil
			err = &check.PanicError{Value: v, Stack: debug.Stack()}
		}
	}()
	return gen()
}

// invoke runs the action on its own goroutine, turning a panic
// or a runtime.Goexit into an error. A panic carrying an
// *check.AssertionFailure still counts as a failure because
// PanicError unwraps to it.
func invoke(ctx context.Context, desc check.Descriptor) error {
	done := make(chan error, 1)
	go func() {
		returned := false
		defer func() {
			if returned {
				return
			}
			if v := recover(); v != nil {
				done <- &check.PanicError{Value: v, Stack: debug.Stack()}
				return
			}
			done <- errGoexit
		}()
		err := desc.Run(ctx)
		returned = true
		done <- err
	}()
	return <-done
}

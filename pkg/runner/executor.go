package runner

import (
	"context"

	"github.com/gammazero/workerpool"

	"digital.vasic.checks/pkg/check"
)

// ExecFunc runs the descriptor at index and returns its outcome.
// It never panics.
type ExecFunc func(
	ctx context.Context,
	index int,
	desc check.Descriptor,
) check.Outcome

// Executor decides how descriptors are scheduled. Execute must
// call exec exactly once per descriptor and return the outcomes
// in descriptor order, whatever order they completed in.
type Executor interface {
	Execute(
		ctx context.Context,
		descs []check.Descriptor,
		exec ExecFunc,
	) []check.Outcome
}

// SequentialExecutor runs descriptors one at a time in order.
type SequentialExecutor struct{}

// Execute runs each descriptor in order.
func (SequentialExecutor) Execute(
	ctx context.Context,
	descs []check.Descriptor,
	exec ExecFunc,
) []check.Outcome {
	outcomes := make([]check.Outcome, len(descs))
	for i, d := range descs {
		outcomes[i] = exec(ctx, i, d)
	}
	return outcomes
}

// ParallelExecutor submits every descriptor to a worker pool of
// at most MaxConcurrency goroutines. Actions must be safe to
// run concurrently with each other.
type ParallelExecutor struct {
	MaxConcurrency int
}

// NewParallelExecutor creates a ParallelExecutor. Values below
// one are treated as one.
func NewParallelExecutor(maxConcurrency int) *ParallelExecutor {
	return &ParallelExecutor{MaxConcurrency: maxConcurrency}
}

// Execute runs the descriptors concurrently and reassembles the
// outcomes by index. Every descriptor is submitted even after
// ctx is cancelled; cancellation is left to the actions.
func (p *ParallelExecutor) Execute(
	ctx context.Context,
	descs []check.Descriptor,
	exec ExecFunc,
) []check.Outcome {
	outcomes := make([]check.Outcome, len(descs))
	if len(descs) == 0 {
		return outcomes
	}

	wp := workerpool.New(p.workers())
	for i, d := range descs {
		idx, desc := i, d
		wp.Submit(func() {
			outcomes[idx] = exec(ctx, idx, desc)
		})
	}
	wp.StopWait()

	return outcomes
}

func (p *ParallelExecutor) workers() int {
	if p.MaxConcurrency <= 0 {
		return 1
	}
	return p.MaxConcurrency
}

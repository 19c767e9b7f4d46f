// Package demo provides sample generators: dynamically computed
// checks, slow independent checks for the parallel executor,
// value-parameterized checks and explicitly ordered checks.
package demo

import (
	"context"
	"fmt"
	"time"

	"digital.vasic.checks/pkg/check"
	"digital.vasic.checks/pkg/suite"
)

// Suite names used by Register.
const (
	EvenNumbersSuite      = "even-numbers"
	SlowChecksSuite       = "slow-checks"
	NonNullStringsSuite   = "non-null-strings"
	PositiveIntegersSuite = "positive-integers"
	OrderedStepsSuite     = "ordered-steps"
)

// DefaultSlowDelay is the wait used by SlowChecks when Register
// is given a zero delay.
const DefaultSlowDelay = time.Second

// EvenNumbers computes one check per even number 2, 4 and 6.
func EvenNumbers() check.Generator {
	return func() ([]check.Descriptor, error) {
		descs := make([]check.Descriptor, 0, 3)
		for i := 1; i <= 3; i++ {
			n := i * 2
			descs = append(descs, check.New(
				fmt.Sprintf("Test even number %d", n),
				func(_ context.Context) error {
					return check.Assert(n%2 == 0, "%d should be even", n)
				},
			))
		}
		return descs, nil
	}
}

// SlowChecks yields two independent checks that each wait delay
// before passing. Run them with a parallel executor to finish in
// about one delay instead of two.
func SlowChecks(delay time.Duration) check.Generator {
	slow := func(label string) check.Action {
		return func(ctx context.Context) error {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-timer.C:
				return nil
			case <-ctx.Done():
				return fmt.Errorf("%s interrupted: %w", label, ctx.Err())
			}
		}
	}
	return check.Static(
		check.New("parallel test 1", slow("parallel test 1")),
		check.New("parallel test 2", slow("parallel test 2")),
	)
}

// NonNullStrings checks each of "hello", "world" and "" is
// present.
func NonNullStrings() check.Generator {
	return check.ForEach("non-null %q", []any{"hello", "world", ""},
		func(_ context.Context, v any) error {
			return check.Assert(v != nil, "input should not be nil")
		},
	)
}

// PositiveIntegers checks each of 1, 2 and 3 is positive.
func PositiveIntegers() check.Generator {
	return check.ForEach("positive %d", []int{1, 2, 3},
		func(_ context.Context, n int) error {
			return check.Assert(n > 0, "%d should be positive", n)
		},
	)
}

// OrderedSteps declares three checks out of order and yields
// them by their order number.
func OrderedSteps() check.Generator {
	var o check.Ordered
	o.Add(3, check.New("third step", func(_ context.Context) error {
		var v any = "checks"
		return check.Assert(v != nil, "value should not be nil")
	}))
	o.Add(1, check.New("first step", func(_ context.Context) error {
		return check.Assert(true, "first step")
	}))
	o.Add(2, check.New("second step", func(_ context.Context) error {
		sum := 2 + 2
		return check.Assert(sum == 4, "2 + 2 = %d, want 4", sum)
	}))
	return o.Generator()
}

// Register adds every sample generator to reg. A zero slowDelay
// uses DefaultSlowDelay.
func Register(reg suite.Registry, slowDelay time.Duration) error {
	if slowDelay == 0 {
		slowDelay = DefaultSlowDelay
	}

	suites := []struct {
		name string
		gen  check.Generator
	}{
		{EvenNumbersSuite, EvenNumbers()},
		{SlowChecksSuite, SlowChecks(slowDelay)},
		{NonNullStringsSuite, NonNullStrings()},
		{PositiveIntegersSuite, PositiveIntegers()},
		{OrderedStepsSuite, OrderedSteps()},
	}
	for _, s := range suites {
		if err := reg.Register(s.name, s.gen); err != nil {
			return fmt.Errorf("register %s: %w", s.name, err)
		}
	}
	return nil
}

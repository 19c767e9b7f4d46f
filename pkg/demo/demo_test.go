package demo

import (
	"context"
	"testing"
	"time"

	"digital.vasic.checks/pkg/check"
	"digital.vasic.checks/pkg/runner"
	"digital.vasic.checks/pkg/suite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(r *check.Report) []string {
	out := make([]string, len(r.Outcomes))
	for i, o := range r.Outcomes {
		out[i] = o.Name
	}
	return out
}

func TestEvenNumbers(t *testing.T) {
	report, err := runner.Run(context.Background(), EvenNumbers())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Test even number 2",
		"Test even number 4",
		"Test even number 6",
	}, names(report))
	assert.True(t, report.AllPassed())
}

func TestNonNullStrings(t *testing.T) {
	report, err := runner.Run(context.Background(), NonNullStrings())
	require.NoError(t, err)
	assert.Equal(t, []string{
		`non-null "hello"`, `non-null "world"`, `non-null ""`,
	}, names(report))
	assert.True(t, report.AllPassed())
}

func TestPositiveIntegers(t *testing.T) {
	report, err := runner.Run(context.Background(), PositiveIntegers())
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"positive 1", "positive 2", "positive 3"},
		names(report),
	)
	assert.True(t, report.AllPassed())
}

func TestOrderedSteps(t *testing.T) {
	report, err := runner.Run(context.Background(), OrderedSteps())
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"first step", "second step", "third step"},
		names(report),
	)
	assert.True(t, report.AllPassed())
}

func TestSlowChecks_Parallel(t *testing.T) {
	delay := 80 * time.Millisecond
	r := runner.NewRunner(runner.WithConcurrency(2))

	start := time.Now()
	report, err := r.Run(context.Background(), SlowChecks(delay))
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.True(t, report.AllPassed())
	assert.GreaterOrEqual(t, elapsed, delay)
	assert.Less(t, elapsed, 2*delay)
}

func TestSlowChecks_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := runner.Run(ctx, SlowChecks(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []check.Status{
		check.StatusErrored, check.StatusErrored,
	}, report.Statuses())
	assert.Contains(t, report.Outcomes[0].Message, "interrupted")
}

func TestRegister(t *testing.T) {
	reg := suite.NewRegistry()
	require.NoError(t, Register(reg, time.Millisecond))

	assert.Equal(t, []string{
		EvenNumbersSuite,
		NonNullStringsSuite,
		OrderedStepsSuite,
		PositiveIntegersSuite,
		SlowChecksSuite,
	}, reg.Names())

	results := suite.NewScheduler(reg, runner.NewRunner()).
		RunAll(context.Background(), nil)
	assert.True(t, suite.AllPassed(results))

	assert.Error(t, Register(reg, 0))
}

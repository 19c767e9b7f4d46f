package suite

import (
	"context"

	"digital.vasic.checks/pkg/check"
	"digital.vasic.checks/pkg/logging"
	"digital.vasic.checks/pkg/runner"
)

// Result is the outcome of running one suite. Exactly one of
// Report and Err is set.
type Result struct {
	Name   string
	Report *check.Report
	Err    error
}

// Scheduler runs registered suites through a runner.
type Scheduler struct {
	registry Registry
	runner   runner.Runner
	filter   string
	logger   logging.Logger
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithFilter restricts every run to checks matching pattern.
func WithFilter(pattern string) SchedulerOption {
	return func(s *Scheduler) {
		s.filter = pattern
	}
}

// WithSchedulerLogger sets the scheduler's logger.
func WithSchedulerLogger(logger logging.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScheduler creates a Scheduler.
func NewScheduler(
	reg Registry,
	r runner.Runner,
	opts ...SchedulerOption,
) *Scheduler {
	s := &Scheduler{
		registry: reg,
		runner:   r,
		logger:   logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunAll runs each named suite once, in the given order. An
// empty names list runs every registered suite in name order.
// A suite that is missing or fails setup gets a Result with Err
// set; later suites still run.
func (s *Scheduler) RunAll(
	ctx context.Context,
	names []string,
) []Result {
	if len(names) == 0 {
		names = s.registry.Names()
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		log := s.logger.WithFields(logging.StringField("suite", name))

		gen, err := s.registry.Get(name)
		if err != nil {
			log.Error("suite_unavailable", logging.ErrorField(err))
			results = append(results, Result{Name: name, Err: err})
			continue
		}

		report, err := s.runner.Run(ctx, Filter(gen, s.filter))
		if err != nil {
			log.Error("suite_setup_failed", logging.ErrorField(err))
			results = append(results, Result{Name: name, Err: err})
			continue
		}

		log.Info("suite_completed",
			logging.IntField("checks", report.Len()),
			logging.BoolField("all_passed", report.AllPassed()),
		)
		results = append(results, Result{Name: name, Report: report})
	}
	return results
}

// AllPassed returns true when every result has a report whose
// checks all passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil || !r.Report.AllPassed() {
			return false
		}
	}
	return true
}

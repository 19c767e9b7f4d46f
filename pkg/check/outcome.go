package check

import "time"

// Status is the recorded result of one check.
type Status string

// Status constants for check outcomes.
const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusErrored Status = "errored"
)

// Outcome is the immutable record of running one descriptor.
type Outcome struct {
	// Name is copied from the descriptor.
	Name string `json:"name"`

	// Status is one of the Status* constants.
	Status Status `json:"status"`

	// Message holds the assertion message for failed checks
	// and the fault description for errored ones.
	Message string `json:"message,omitempty"`

	// StartTime is when the action was invoked.
	StartTime time.Time `json:"start_time"`

	// Duration is the wall-clock time spent in the action.
	Duration time.Duration `json:"duration"`
}

// Report is the ordered sequence of outcomes of one run.
// Outcomes appear in generator order regardless of the order in
// which they completed.
type Report struct {
	Outcomes  []Outcome     `json:"outcomes"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
}

// Counts tallies outcomes per status.
type Counts struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
}

// Total returns the number of outcomes counted.
func (c Counts) Total() int {
	return c.Passed + c.Failed + c.Errored
}

// Len returns the number of outcomes.
func (r *Report) Len() int {
	return len(r.Outcomes)
}

// Counts returns the per-status tally of the report.
func (r *Report) Counts() Counts {
	var c Counts
	for _, o := range r.Outcomes {
		switch o.Status {
		case StatusPassed:
			c.Passed++
		case StatusFailed:
			c.Failed++
		case StatusErrored:
			c.Errored++
		}
	}
	return c
}

// AllPassed returns true if every outcome passed. An empty
// report passes.
func (r *Report) AllPassed() bool {
	for _, o := range r.Outcomes {
		if o.Status != StatusPassed {
			return false
		}
	}
	return true
}

// Statuses returns the status of each outcome in order.
func (r *Report) Statuses() []Status {
	out := make([]Status, len(r.Outcomes))
	for i, o := range r.Outcomes {
		out[i] = o.Status
	}
	return out
}

// RunState is a stage in the lifecycle of a single run:
// NotStarted -> Generating -> Executing -> Completed, or
// Generating -> SetupFailed.
type RunState string

// RunState constants.
const (
	StateNotStarted  RunState = "not_started"
	StateGenerating  RunState = "generating"
	StateExecuting   RunState = "executing"
	StateCompleted   RunState = "completed"
	StateSetupFailed RunState = "setup_failed"
)

// IsTerminal returns true for Completed and SetupFailed.
func (s RunState) IsTerminal() bool {
	return s == StateCompleted || s == StateSetupFailed
}

package report

import (
	"time"

	"digital.vasic.checks/pkg/check"
)

// Summary aggregates a run report.
type Summary struct {
	Suite    string        `json:"suite,omitempty"`
	Total    int           `json:"total"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Errored  int           `json:"errored"`
	PassRate float64       `json:"pass_rate"`
	Duration time.Duration `json:"duration"`
}

// BuildSummary computes the summary of report.
func BuildSummary(suite string, report *check.Report) Summary {
	counts := report.Counts()
	s := Summary{
		Suite:    suite,
		Total:    report.Len(),
		Passed:   counts.Passed,
		Failed:   counts.Failed,
		Errored:  counts.Errored,
		Duration: report.Duration,
	}
	if s.Total > 0 {
		s.PassRate = float64(s.Passed) / float64(s.Total)
	}
	return s
}

package report

import (
	"fmt"
	"io"
	"strings"

	"digital.vasic.checks/pkg/check"
)

// TextReporter renders one line per outcome and a closing tally,
// in the style of a console test runner.
type TextReporter struct {
	suite string
}

// NewTextReporter creates a TextReporter.
func NewTextReporter(suite string) *TextReporter {
	return &TextReporter{suite: suite}
}

var statusLabel = map[check.Status]string{
	check.StatusPassed:  "PASS",
	check.StatusFailed:  "FAIL",
	check.StatusErrored: "ERROR",
}

// Generate renders the report.
func (r *TextReporter) Generate(
	report *check.Report,
) ([]byte, error) {
	var sb strings.Builder

	if r.suite != "" {
		sb.WriteString(fmt.Sprintf("=== %s\n", r.suite))
	}
	for _, o := range report.Outcomes {
		sb.WriteString(fmt.Sprintf(
			"--- %-5s %s (%v)\n",
			statusLabel[o.Status], o.Name, o.Duration,
		))
		if o.Message != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", o.Message))
		}
	}

	s := BuildSummary(r.suite, report)
	sb.WriteString(fmt.Sprintf(
		"%d checks: %d passed, %d failed, %d errored (%v)\n",
		s.Total, s.Passed, s.Failed, s.Errored, s.Duration,
	))

	return []byte(sb.String()), nil
}

// Write renders the report to w.
func (r *TextReporter) Write(
	w io.Writer,
	report *check.Report,
) error {
	return writeGenerated(w, r.Generate, report)
}

package report

import (
	"fmt"
	"io"
	"strings"

	"digital.vasic.checks/pkg/check"
)

// MarkdownReporter renders reports as a Markdown table followed
// by run statistics.
type MarkdownReporter struct {
	suite string
}

// NewMarkdownReporter creates a MarkdownReporter.
func NewMarkdownReporter(suite string) *MarkdownReporter {
	return &MarkdownReporter{suite: suite}
}

// Generate renders the report.
func (r *MarkdownReporter) Generate(
	report *check.Report,
) ([]byte, error) {
	var sb strings.Builder
	summary := BuildSummary(r.suite, report)

	title := "Check Run"
	if r.suite != "" {
		title = "Check Run - " + r.suite
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", title))

	sb.WriteString("| # | Check | Status | Duration | Message |\n")
	sb.WriteString("|---|-------|--------|----------|---------|\n")
	for i, o := range report.Outcomes {
		sb.WriteString(fmt.Sprintf(
			"| %d | %s | %s | %v | %s |\n",
			i+1, escapeCell(o.Name),
			strings.ToUpper(string(o.Status)),
			o.Duration, escapeCell(o.Message),
		))
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total | %d |\n", summary.Total))
	sb.WriteString(fmt.Sprintf("| Passed | %d |\n", summary.Passed))
	sb.WriteString(fmt.Sprintf("| Failed | %d |\n", summary.Failed))
	sb.WriteString(fmt.Sprintf("| Errored | %d |\n", summary.Errored))
	sb.WriteString(fmt.Sprintf(
		"| Pass Rate | %.0f%% |\n", summary.PassRate*100,
	))
	sb.WriteString(fmt.Sprintf(
		"| Duration | %v |\n", summary.Duration,
	))

	return []byte(sb.String()), nil
}

// Write renders the report to w.
func (r *MarkdownReporter) Write(
	w io.Writer,
	report *check.Report,
) error {
	return writeGenerated(w, r.Generate, report)
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

package report

import (
	"encoding/json"
	"io"

	"digital.vasic.checks/pkg/check"
)

// JSONReporter renders reports as JSON.
type JSONReporter struct {
	suite  string
	pretty bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(suite string, pretty bool) *JSONReporter {
	return &JSONReporter{suite: suite, pretty: pretty}
}

type jsonReport struct {
	Summary  Summary         `json:"summary"`
	Outcomes []check.Outcome `json:"outcomes"`
}

// Generate renders the summary and every outcome.
func (r *JSONReporter) Generate(
	report *check.Report,
) ([]byte, error) {
	doc := jsonReport{
		Summary:  BuildSummary(r.suite, report),
		Outcomes: report.Outcomes,
	}
	if doc.Outcomes == nil {
		doc.Outcomes = []check.Outcome{}
	}

	if r.pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// Write renders the report to w.
func (r *JSONReporter) Write(
	w io.Writer,
	report *check.Report,
) error {
	return writeGenerated(w, r.Generate, report)
}

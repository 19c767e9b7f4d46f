// Package report renders run reports for people and machines.
package report

import (
	"io"

	"digital.vasic.checks/pkg/check"
)

// Reporter defines the interface for rendering a run report.
type Reporter interface {
	// Generate renders the report.
	Generate(report *check.Report) ([]byte, error)

	// Write renders the report to w.
	Write(w io.Writer, report *check.Report) error
}

// writeGenerated is shared by the Write methods.
func writeGenerated(
	w io.Writer,
	gen func(*check.Report) ([]byte, error),
	report *check.Report,
) error {
	data, err := gen(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

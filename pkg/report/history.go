package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"digital.vasic.checks/pkg/check"
)

// HistoricalEntry is one run in the history log.
type HistoricalEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Suite     string    `json:"suite"`
	Total     int       `json:"total"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
	Errored   int       `json:"errored"`
	Duration  string    `json:"duration"`
}

// AppendToHistory adds an entry for report to the JSON Lines
// history file at historyPath.
func AppendToHistory(
	historyPath string,
	suite string,
	report *check.Report,
) error {
	s := BuildSummary(suite, report)
	entry := HistoricalEntry{
		Timestamp: report.EndTime,
		Suite:     suite,
		Total:     s.Total,
		Passed:    s.Passed,
		Failed:    s.Failed,
		Errored:   s.Errored,
		Duration:  s.Duration.String(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal history entry: %w", err,
		)
	}

	if err := os.MkdirAll(filepath.Dir(historyPath), 0755); err != nil {
		return fmt.Errorf(
			"failed to create history directory: %w", err,
		)
	}

	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf(
			"failed to write history entry: %w", err,
		)
	}
	return nil
}

// LoadHistory reads every entry of the history file.
func LoadHistory(historyPath string) ([]HistoricalEntry, error) {
	file, err := os.Open(historyPath)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer file.Close()

	var entries []HistoricalEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e HistoricalEntry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf(
				"failed to parse history entry: %w", err,
			)
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(
			"failed to read history file: %w", err,
		)
	}
	return entries, nil
}

// SaveReport writes JSON and Markdown renderings of report into
// outputDir with timestamped names and returns their paths.
func SaveReport(
	outputDir string,
	suite string,
	report *check.Report,
) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	ts := report.EndTime.Format("20060102_150405")
	base := "run"
	if suite != "" {
		base = suite
	}

	renderers := []struct {
		ext string
		r   Reporter
	}{
		{"json", NewJSONReporter(suite, true)},
		{"md", NewMarkdownReporter(suite)},
	}

	paths := make([]string, 0, len(renderers))
	for _, rd := range renderers {
		data, err := rd.r.Generate(report)
		if err != nil {
			return nil, fmt.Errorf(
				"failed to render %s report: %w", rd.ext, err,
			)
		}
		p := filepath.Join(
			outputDir,
			fmt.Sprintf("%s_%s.%s", base, ts, rd.ext),
		)
		if err := os.WriteFile(p, data, 0644); err != nil {
			return nil, fmt.Errorf(
				"failed to write %s: %w", p, err,
			)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

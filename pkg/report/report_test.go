package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"digital.vasic.checks/pkg/check"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *check.Report {
	end := time.Date(2026, 3, 4, 10, 20, 30, 0, time.UTC)
	return &check.Report{
		StartTime: end.Add(-3 * time.Second),
		EndTime:   end,
		Duration:  3 * time.Second,
		Outcomes: []check.Outcome{
			{Name: "Test even number 2", Status: check.StatusPassed,
				Duration: time.Second},
			{Name: "value | pipe", Status: check.StatusFailed,
				Message: "3 should be even"},
			{Name: "broken", Status: check.StatusErrored,
				Message: "panic: nil map"},
		},
	}
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary("demo", sampleReport())

	assert.Equal(t, "demo", s.Suite)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, 1, s.Errored)
	assert.InDelta(t, 1.0/3.0, s.PassRate, 0.0001)
	assert.Equal(t, 3*time.Second, s.Duration)
}

func TestBuildSummary_Empty(t *testing.T) {
	s := BuildSummary("", &check.Report{})
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.PassRate)
}

func TestJSONReporter(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		data, err := NewJSONReporter("demo", pretty).
			Generate(sampleReport())
		require.NoError(t, err)

		var doc jsonReport
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, 3, doc.Summary.Total)
		require.Len(t, doc.Outcomes, 3)
		assert.Equal(t, check.StatusFailed, doc.Outcomes[1].Status)
		assert.Equal(t, "3 should be even", doc.Outcomes[1].Message)
	}
}

func TestJSONReporter_EmptyReportHasEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t,
		NewJSONReporter("", false).Write(&buf, &check.Report{}),
	)
	assert.Contains(t, buf.String(), `"outcomes":[]`)
}

func TestMarkdownReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t,
		NewMarkdownReporter("demo").Write(&buf, sampleReport()),
	)

	out := buf.String()
	assert.Contains(t, out, "# Check Run - demo")
	assert.Contains(t, out, "| 1 | Test even number 2 | PASSED |")
	assert.Contains(t, out, `value \| pipe`)
	assert.Contains(t, out, "| Errored | 1 |")
	assert.Contains(t, out, "| Pass Rate | 33% |")
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t,
		NewTextReporter("demo").Write(&buf, sampleReport()),
	)

	out := buf.String()
	assert.Contains(t, out, "=== demo")
	assert.Contains(t, out, "--- PASS  Test even number 2")
	assert.Contains(t, out, "--- FAIL  value | pipe")
	assert.Contains(t, out, "    3 should be even")
	assert.Contains(t, out, "--- ERROR broken")
	assert.Contains(t, out,
		"3 checks: 1 passed, 1 failed, 1 errored",
	)
}

func TestReporters_ImplementInterface(t *testing.T) {
	var _ Reporter = NewJSONReporter("", false)
	var _ Reporter = NewMarkdownReporter("")
	var _ Reporter = NewTextReporter("")
}

func TestHistory_AppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist", "history.jsonl")

	require.NoError(t, AppendToHistory(path, "demo", sampleReport()))
	require.NoError(t, AppendToHistory(path, "other", &check.Report{}))

	entries, err := LoadHistory(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "demo", entries[0].Suite)
	assert.Equal(t, 3, entries[0].Total)
	assert.Equal(t, 1, entries[0].Errored)
	assert.Equal(t, "3s", entries[0].Duration)
	assert.Equal(t, "other", entries[1].Suite)
}

func TestLoadHistory_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadHistory(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.jsonl")
	require.NoError(t, os.WriteFile(bad, []byte("{not json}\n"), 0644))
	_, err = LoadHistory(bad)
	assert.Error(t, err)
}

func TestSaveReport(t *testing.T) {
	dir := t.TempDir()

	paths, err := SaveReport(dir, "demo", sampleReport())
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t,
		filepath.Join(dir, "demo_20260304_102030.json"), paths[0],
	)
	assert.Equal(t,
		filepath.Join(dir, "demo_20260304_102030.md"), paths[1],
	)
	for _, p := range paths {
		assert.FileExists(t, p)
	}
}

func TestSaveReport_BadDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := SaveReport(filepath.Join(blocker, "out"), "", sampleReport())
	assert.Error(t, err)
}

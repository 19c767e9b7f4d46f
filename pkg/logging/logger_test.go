package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, Field{"k", "v"}, StringField("k", "v"))
	assert.Equal(t, Field{"n", 3}, IntField("n", 3))
	assert.Equal(t, Field{"b", true}, BoolField("b", true))
	assert.Equal(t, Field{"x", 1.5}, LogField("x", 1.5))
	assert.Equal(t,
		Field{"took_ms", int64(1500)},
		DurationField("took", 1500*time.Millisecond),
	)
	assert.Equal(t,
		Field{"error", "boom"}, ErrorField(errors.New("boom")),
	)
	assert.Equal(t, Field{"error", "<nil>"}, ErrorField(nil))
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, false)

	logger.Info("run_started", IntField("checks", 3))
	logger.Debug("hidden")
	logger.WithFields(StringField("suite", "demo")).
		Error("run_setup_failed")

	out := buf.String()
	assert.Contains(t, out, "run_started")
	assert.Contains(t, out, "checks=3")
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "suite=demo")
	assert.NoError(t, logger.Close())
}

func TestConsoleLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerTo(&buf, true)

	logger.Debug("shown")
	logger.Warn("careful")

	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "WARN")
}

type closeErrLogger struct {
	NullLogger
	err error
}

func (c closeErrLogger) Close() error { return c.err }

func TestMultiLogger(t *testing.T) {
	var a, b bytes.Buffer
	m := NewMultiLogger(
		NewConsoleLoggerTo(&a, true),
		NewConsoleLoggerTo(&b, true),
	)

	m.Info("i")
	m.Warn("w")
	m.Error("e")
	m.Debug("d")
	m.WithFields(StringField("k", "v")).Info("with")

	for _, out := range []string{a.String(), b.String()} {
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "WARN")
		assert.Contains(t, out, "ERROR")
		assert.Contains(t, out, "DEBUG")
		assert.Contains(t, out, "k=v")
	}
	assert.NoError(t, m.Close())
}

func TestMultiLogger_CloseJoinsErrors(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")
	m := NewMultiLogger(
		closeErrLogger{err: e1},
		NullLogger{},
		closeErrLogger{err: e2},
	)

	err := m.Close()
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)
}

func TestNullLogger(t *testing.T) {
	var l Logger = NullLogger{}
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	l.Debug("x")
	assert.Equal(t, NullLogger{}, l.WithFields(StringField("a", "b")))
	assert.NoError(t, l.Close())
}

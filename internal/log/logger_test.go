package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	return NewLogger(LoggerConfig{Level: level, Output: buf, Prefix: "test"})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"", LevelInfo},
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		require.NoError(t, err, "ParseLogLevel(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseLogLevel(%q)", tt.in)
	}

	_, err := ParseLogLevel("loud")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	assert.Empty(t, buf.String(), "messages below the level must be dropped")

	l.Warn("careful with %s", "bindings")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), `msg="careful with bindings"`)
	assert.Contains(t, buf.String(), "app=test")

	buf.Reset()
	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.Level())
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelInfo).
		WithComponent("config").
		WithField("path", "keys.toml").
		WithFields(map[string]any{"count": 3})

	l.WithError(errors.New("boom")).Error("load failed")

	out := buf.String()
	assert.Contains(t, out, "component=config")
	assert.Contains(t, out, "path=keys.toml")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "level=error")
}

func TestLoggerDerivedSharesOutput(t *testing.T) {
	var first, second bytes.Buffer
	parent := newTestLogger(&first, LevelInfo)
	child := parent.WithComponent("watcher")

	parent.SetOutput(&second)
	child.Info("reloaded")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "reloaded")
}

func TestNullLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NullLogger.WithComponent("x").Error("dropped %d", 1)
	})
}

func TestDefault(t *testing.T) {
	require.NotNil(t, Default())
	assert.Same(t, Default(), Default())
}

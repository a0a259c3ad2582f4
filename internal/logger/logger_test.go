package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"ERROR", LevelError},
		{"none", LevelNone},
		{"off", LevelNone},
		{" info ", LevelInfo},
		{"invalid", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "NONE", LevelNone.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestNewLoggerWritesFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "calcpad.log")

	l, err := New(LevelInfo, logPath, "test")
	require.NoError(t, err)

	l.Info("test message %d", 1)
	l.Debug("should not appear")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "test message 1")
	assert.Contains(t, text, "[INFO]")
	assert.Contains(t, text, "[test]")
	assert.NotContains(t, text, "should not appear")
}

func TestWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(LevelDebug, &buf, "parent")

	l.WithPrefix("child").Warn("hello")

	assert.Contains(t, buf.String(), "[parent:child] hello")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(LevelInfo, &buf, "")

	l.Debug("debug1")
	l.SetLevel(LevelDebug)
	l.Debug("debug2")

	assert.NotContains(t, buf.String(), "debug1")
	assert.Contains(t, buf.String(), "debug2")
	assert.Equal(t, LevelDebug, l.GetLevel())
}

func TestDisabledLogger(t *testing.T) {
	l, err := New(LevelNone, "", "test")
	require.NoError(t, err)

	l.Debug("debug")
	l.Error("error")
	assert.NoError(t, l.Close())
}

func TestGlobalLogger(t *testing.T) {
	require.NotNil(t, Global())

	// Must not panic before Init.
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(LevelInfo, &buf, "slog")

	sl := slog.New(NewSlogHandler(l)).With("component", "clipboard").WithGroup("copy")
	sl.Info("write failed", "bytes", 3, slog.Group("target", "kind", "text"))
	sl.Debug("dropped")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[INFO] [slog] write failed component=clipboard copy.bytes=3 copy.target.kind=text")
}

func TestSlogHandlerNilLogger(t *testing.T) {
	assert.Nil(t, NewSlogHandler(nil))
}

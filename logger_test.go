package bitarray

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestLogger_LogOperation(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)
	ctx := context.Background()

	l.LogOperation(ctx, "concat", 12, nil)
	l.LogOperation(ctx, "slice", 8, errors.New("boom"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "concat completed", lines[0]["msg"])
	assert.EqualValues(t, 12, lines[0]["size"])

	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, "slice failed", lines[1]["msg"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithSize(64).WithCount(3).WithStep(7)

	l.Info("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.EqualValues(t, 64, lines[0]["size"])
	assert.EqualValues(t, 3, lines[0]["count"])
	assert.EqualValues(t, 7, lines[0]["step"])
}

func TestLogger_LogAttractor(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)
	ctx := context.Background()

	l.LogAttractor(ctx, 40, 4, true)
	l.LogAttractor(ctx, 100, 0, false)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.EqualValues(t, 4, lines[0]["period"])
	assert.Equal(t, "WARN", lines[1]["level"])
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogOperation(context.Background(), "noop", 0, errors.New("ignored"))
}

func TestNewLoggerDefaults(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.True(t, NewJSONLogger(slog.LevelDebug).Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, NewTextLogger(slog.LevelWarn).Enabled(context.Background(), slog.LevelInfo))
}

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestCloudLoggingHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewCloudLoggingHandlerTo(&buf, slog.LevelInfo)).With(slog.String(UserIDField, "u1"))

	ctx := WithTraceID(context.Background(), "projects/p/traces/abc")
	logger.DebugContext(ctx, "hidden")
	logger.InfoContext(ctx, "conversation created", slog.String(ConversationIDField, "c1"))
	logger.Error("write failed", Err(errors.New("boom")))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0]["severity"])
	assert.Equal(t, "conversation created", entries[0]["message"])
	assert.Equal(t, "u1", entries[0][UserIDField])
	assert.Equal(t, "c1", entries[0][ConversationIDField])
	assert.Equal(t, "projects/p/traces/abc", entries[0][traceField])

	assert.Equal(t, "ERROR", entries[1]["severity"])
	assert.Equal(t, "boom", entries[1][ErrorMsgField])
	assert.NotContains(t, entries[1], traceField)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: " WARN ", expected: slog.LevelWarn},
		{input: "warning", expected: slog.LevelWarn},
		{input: "error", expected: slog.LevelError},
		{input: "", expected: slog.LevelInfo},
		{input: "verbose", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestTraceIDFromRequest(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	assert.Empty(t, TraceIDFromRequest(r, "p"))

	r.Header.Set(traceHeader, "105445aa7843bc8bf206b120001000/1;o=1")
	assert.Equal(t, "projects/p/traces/105445aa7843bc8bf206b120001000", TraceIDFromRequest(r, "p"))
	assert.Empty(t, TraceIDFromRequest(r, ""))
}

func TestLoggerFromContext(t *testing.T) {
	logger := slog.New(NewCloudLoggingHandlerTo(&bytes.Buffer{}, slog.LevelDebug))
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, LoggerFromContext(ctx))
	assert.NotNil(t, LoggerFromContext(context.Background()))
}

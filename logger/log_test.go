package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"cloud.google.com/go/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klipach/traveloracle/config"
	"github.com/klipach/traveloracle/log"
)

type recordingLogger struct {
	entries []logging.Entry
}

func (r *recordingLogger) Log(e logging.Entry) {
	r.entries = append(r.entries, e)
}

func TestCloudHandler(t *testing.T) {
	rec := &recordingLogger{}
	logger := slog.New(&cloudHandler{logger: rec, level: slog.LevelInfo}).With(slog.String(log.UserIDField, "u1"))

	ctx := log.WithTraceID(context.Background(), "projects/p/traces/t")
	logger.DebugContext(ctx, "dropped")
	logger.WarnContext(ctx, "skipping malformed store", slog.String(log.StoreIDField, "s1"))
	logger.Error("failed", log.Err(errors.New("boom")))

	require.Len(t, rec.entries, 2)
	assert.Equal(t, logging.Warning, rec.entries[0].Severity)
	assert.Equal(t, "projects/p/traces/t", rec.entries[0].Trace)
	assert.Equal(t, map[string]any{
		"message":        "skipping malformed store",
		log.UserIDField:  "u1",
		log.StoreIDField: "s1",
	}, rec.entries[0].Payload)

	assert.Equal(t, logging.Error, rec.entries[1].Severity)
	assert.Empty(t, rec.entries[1].Trace)
}

func TestNewStdout(t *testing.T) {
	logger, closeFn, err := New(context.Background(), config.Log{Level: "warn"}, "")
	require.NoError(t, err)
	require.NoError(t, closeFn())
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

package logger

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/compute/metadata"
	"cloud.google.com/go/logging"

	"github.com/klipach/traveloracle/config"
	"github.com/klipach/traveloracle/log"
)

// New returns the service logger. With cfg.Cloud set, entries go through
// the Cloud Logging client, otherwise they are written to stdout in the
// structured format Cloud Run and Cloud Functions pick up. The returned
// close func flushes pending entries.
func New(ctx context.Context, cfg config.Log, projectID string) (*slog.Logger, func() error, error) {
	level := log.ParseLevel(cfg.Level)
	log.SetDefaultLevel(level)
	if !cfg.Cloud {
		return slog.New(log.NewCloudLoggingHandler(level)), func() error { return nil }, nil
	}

	if projectID == "" && metadata.OnGCE() {
		id, err := metadata.ProjectIDWithContext(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get project ID: %w", err)
		}
		projectID = id
	}
	if projectID == "" {
		return nil, nil, fmt.Errorf("cloud logging needs a project ID")
	}

	client, err := logging.NewClient(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logging client: %w", err)
	}
	handler := &cloudHandler{
		logger: client.Logger(cfg.ID),
		level:  level,
	}
	return slog.New(handler), client.Close, nil
}

type entryLogger interface {
	Log(e logging.Entry)
}

// cloudHandler forwards records to a Cloud Logging logger.
type cloudHandler struct {
	logger entryLogger
	level  slog.Level
	attrs  []slog.Attr
}

func (h *cloudHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *cloudHandler) Handle(ctx context.Context, r slog.Record) error {
	payload := make(map[string]any, len(h.attrs)+r.NumAttrs()+1)
	payload["message"] = r.Message
	for _, attr := range h.attrs {
		payload[attr.Key] = attr.Value.Resolve().Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		payload[attr.Key] = attr.Value.Resolve().Any()
		return true
	})
	h.logger.Log(logging.Entry{
		Timestamp: r.Time,
		Severity:  severity(r.Level),
		Payload:   payload,
		Trace:     log.TraceIDFromContext(ctx),
	})
	return nil
}

func (h *cloudHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)
	return &cloudHandler{logger: h.logger, level: h.level, attrs: newAttrs}
}

func (h *cloudHandler) WithGroup(_ string) slog.Handler {
	return h
}

func severity(level slog.Level) logging.Severity {
	switch {
	case level >= slog.LevelError:
		return logging.Error
	case level >= slog.LevelWarn:
		return logging.Warning
	case level >= slog.LevelInfo:
		return logging.Info
	default:
		return logging.Debug
	}
}

package log

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	ErrorMsgField       = "errorMsg"
	UserIDField         = "userID"
	ConversationIDField = "conversationID"
	StoreIDField        = "storeID"
	DocumentField       = "document"
	CountField          = "count"
	MethodField         = "method"

	traceField  = "logging.googleapis.com/trace"
	traceHeader = "X-Cloud-Trace-Context"
)

type ctxKey struct{}

type traceKey struct{}

// CloudLoggingHandler is a slog.Handler writing Google Cloud structured
// JSON, one entry per line.
type CloudLoggingHandler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Leveler
	attrs []slog.Attr
}

// NewCloudLoggingHandler writes to stdout entries at or above level.
func NewCloudLoggingHandler(level slog.Leveler) *CloudLoggingHandler {
	return NewCloudLoggingHandlerTo(os.Stdout, level)
}

func NewCloudLoggingHandlerTo(out io.Writer, level slog.Leveler) *CloudLoggingHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &CloudLoggingHandler{mu: &sync.Mutex{}, out: out, level: level}
}

func (h *CloudLoggingHandler) Handle(ctx context.Context, r slog.Record) error {
	entry := map[string]any{
		"severity": severity(r.Level),
		"time":     r.Time.Format(time.RFC3339Nano),
		"message":  r.Message,
	}
	if r.Time.IsZero() {
		entry["time"] = time.Now().Format(time.RFC3339Nano)
	}
	if traceID := TraceIDFromContext(ctx); traceID != "" {
		entry[traceField] = traceID
	}

	for _, attr := range h.attrs {
		entry[attr.Key] = attrValue(attr.Value)
	}
	r.Attrs(func(attr slog.Attr) bool {
		entry[attr.Key] = attrValue(attr.Value)
		return true
	})

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(data)
	return err
}

func (h *CloudLoggingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CloudLoggingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &CloudLoggingHandler{mu: h.mu, out: h.out, level: h.level, attrs: newAttrs}
}

// WithGroup returns the same handler, as grouping is not implemented.
func (h *CloudLoggingHandler) WithGroup(_ string) slog.Handler {
	return h
}

// severity maps slog levels to Cloud Logging severities.
func severity(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARNING"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

func attrValue(v slog.Value) any {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	case slog.KindGroup:
		group := make(map[string]any, len(v.Group()))
		for _, attr := range v.Group() {
			group[attr.Key] = attrValue(attr.Value)
		}
		return group
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
	}
	return v.Any()
}

// ParseLevel accepts debug, info, warn and error, anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceKey{}, traceID)
}

func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceKey{}).(string)
	return traceID
}

// TraceIDFromRequest returns the full trace resource name carried by the
// X-Cloud-Trace-Context header, empty when absent.
func TraceIDFromRequest(r *http.Request, projectID string) string {
	header := r.Header.Get(traceHeader)
	if header == "" || projectID == "" {
		return ""
	}
	traceID, _, _ := strings.Cut(header, "/")
	if traceID == "" {
		return ""
	}
	return "projects/" + projectID + "/traces/" + traceID
}

var defaultLevel = new(slog.LevelVar)

// SetDefaultLevel sets the threshold of the logger returned when the
// context carries none.
func SetDefaultLevel(level slog.Level) {
	defaultLevel.Set(level)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.New(NewCloudLoggingHandler(defaultLevel))
}

// Err is the attribute every error log line carries.
func Err(err error) slog.Attr {
	return slog.String(ErrorMsgField, err.Error())
}

package observe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Severity names follow the Cloud Logging structured log format.
const (
	severityDebug   = "DEBUG"
	severityInfo    = "INFO"
	severityWarning = "WARNING"
	severityError   = "ERROR"
)

// Level represents a logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// ParseLevel parses a string log level. Unknown input maps to LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "debug", severityDebug:
		return LevelDebug
	case "info", severityInfo:
		return LevelInfo
	case "warning", "warn", severityWarning:
		return LevelWarning
	case "error", severityError:
		return LevelError
	default:
		return LevelInfo
	}
}

// Field represents a structured log field.
type Field struct {
	Key   string
	Value any
}

// Config holds the configuration for a Logger.
type Config struct {
	// Service is the name stamped on every record. Required.
	Service string

	// ProjectID scopes the Cloud Trace resource name. Defaults to the
	// GCP_PROJECT_ID environment variable, then to "unknown".
	ProjectID string

	// Level is the minimum severity to emit: debug|info|warning|error.
	// Defaults to info.
	Level string

	// Writer receives one newline-delimited JSON record per log call.
	// Defaults to os.Stdout.
	Writer io.Writer
}

// Logger emits one structured JSON record per call, correlated with the
// request's correlation ID and Cloud Trace context.
//
// Contract:
// - Concurrency: safe for concurrent use; writes are serialized.
// - Errors: logging is best-effort and never panics or returns an error.
type Logger struct {
	service   string
	projectID string
	level     Level
	mu        sync.Mutex
	w         io.Writer
}

// NewLogger creates a Logger for the given service.
func NewLogger(cfg Config) *Logger {
	projectID := cfg.ProjectID
	if projectID == "" {
		projectID = os.Getenv("GCP_PROJECT_ID")
	}
	if projectID == "" {
		projectID = "unknown"
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	return &Logger{
		service:   cfg.Service,
		projectID: projectID,
		level:     ParseLevel(cfg.Level),
		w:         w,
	}
}

// Info logs a message at INFO severity.
func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelInfo, severityInfo, msg, fields)
}

// Warning logs a message at WARNING severity.
func (l *Logger) Warning(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelWarning, severityWarning, msg, fields)
}

// Error logs a message at ERROR severity.
func (l *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelError, severityError, msg, fields)
}

// Debug logs a message at DEBUG severity.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, LevelDebug, severityDebug, msg, fields)
}

func (l *Logger) log(ctx context.Context, level Level, severity, msg string, fields []Field) {
	if level < l.level {
		return
	}

	data, err := json.Marshal(l.formatRecord(ctx, severity, msg, fields))
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(data)
	l.w.Write([]byte("\n"))
}

// formatRecord builds the log record for a single event. Merge order, last
// writer wins except where noted:
//
//  1. timestamp, severity, message, service
//  2. correlation_id: context value, else a correlation_id caller field,
//     else a freshly minted UUID
//  3. resolved trace context (trace, trace_id, span_id)
//  4. caller fields, which may override anything except correlation_id
func (l *Logger) formatRecord(ctx context.Context, severity, msg string, fields []Field) map[string]any {
	entry := make(map[string]any, len(fields)+8)
	entry["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["severity"] = severity
	entry["message"] = msg
	entry["service"] = l.service

	correlationID := CorrelationIDFrom(ctx)
	if correlationID == "" {
		for _, f := range fields {
			if f.Key == "correlation_id" {
				if s, ok := f.Value.(string); ok && s != "" {
					correlationID = s
				}
				break
			}
		}
	}
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	if tc := ResolveTraceContext(l.projectID, TraceHeaderFrom(ctx)); !tc.IsZero() {
		entry["trace"] = tc.Trace
		entry["trace_id"] = tc.TraceID
		if tc.SpanID != "" {
			entry["span_id"] = tc.SpanID
		}
	}

	for _, f := range fields {
		if f.Key == "correlation_id" {
			continue
		}
		entry[f.Key] = jsonValue(f.Value)
	}

	// Set last so no caller field can shadow it.
	entry["correlation_id"] = correlationID

	return entry
}

// jsonValue degrades values encoding/json cannot marshal to their string
// form, so a bad field never aborts the log call.
func jsonValue(v any) any {
	if _, err := json.Marshal(v); err != nil {
		return fmt.Sprint(v)
	}
	return v
}

package observe

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Header names used to thread identifiers between services.
const (
	// HeaderCorrelationID carries the caller-assigned request identifier.
	HeaderCorrelationID = "X-Correlation-ID"

	// HeaderTraceContext carries the Cloud Trace context in the form
	// TRACE_ID/SPAN_ID;o=FLAGS.
	HeaderTraceContext = "X-Cloud-Trace-Context"
)

// traceContextEnv mirrors the Cloud Run convention of exposing the trace
// header as an environment variable. Used only as a fallback when the
// request context carries no header.
const traceContextEnv = "HTTP_X_CLOUD_TRACE_CONTEXT"

// NewCorrelationID returns a freshly generated correlation ID.
// The ID is a random 128-bit UUID string.
func NewCorrelationID() string {
	return uuid.NewString()
}

// ExtractTraceID extracts the trace ID from an X-Cloud-Trace-Context header
// value of the form TRACE_ID/SPAN_ID;o=FLAGS. It returns the substring
// before the first '/', or the whole value when no '/' is present, and the
// empty string for empty input. The trace ID is not validated.
func ExtractTraceID(header string) string {
	if header == "" {
		return ""
	}
	id, _, _ := strings.Cut(header, "/")
	return id
}

// Context keys for request-scoped observability values.
type contextKey int

const (
	correlationIDKey contextKey = iota
	traceHeaderKey
)

// WithCorrelationID returns a new context carrying the given correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFrom retrieves the correlation ID from the context.
// Returns the empty string if none is present.
func CorrelationIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// WithTraceHeader returns a new context carrying the raw trace header value.
func WithTraceHeader(ctx context.Context, header string) context.Context {
	return context.WithValue(ctx, traceHeaderKey, header)
}

// TraceHeaderFrom retrieves the raw trace header from the context, falling
// back to the HTTP_X_CLOUD_TRACE_CONTEXT environment variable.
// Returns the empty string if neither is set.
func TraceHeaderFrom(ctx context.Context) string {
	if h, ok := ctx.Value(traceHeaderKey).(string); ok && h != "" {
		return h
	}
	return os.Getenv(traceContextEnv)
}

package observe

import (
	"strings"
)

// TraceContext is the resolved view of an X-Cloud-Trace-Context header.
// The zero value means no trace information was present.
type TraceContext struct {
	// Trace is the fully qualified Cloud Trace resource name,
	// projects/<project>/traces/<trace id>.
	Trace string

	// TraceID is the raw trace identifier.
	TraceID string

	// SpanID is the span identifier, when the header carried one.
	SpanID string
}

// IsZero reports whether no trace information was resolved.
func (t TraceContext) IsZero() bool {
	return t.TraceID == ""
}

// ResolveTraceContext parses a raw X-Cloud-Trace-Context header value
// (TRACE_ID/SPAN_ID;o=FLAGS) into a TraceContext scoped to the given
// project. Malformed input degrades to a partial or zero context; this
// function never fails.
func ResolveTraceContext(projectID, header string) TraceContext {
	if header == "" {
		return TraceContext{}
	}

	traceID, rest, hasSpan := strings.Cut(header, "/")
	if traceID == "" {
		return TraceContext{}
	}

	tc := TraceContext{
		Trace:   "projects/" + projectID + "/traces/" + traceID,
		TraceID: traceID,
	}

	if hasSpan {
		spanID, _, _ := strings.Cut(rest, ";")
		tc.SpanID = spanID
	}

	return tc
}

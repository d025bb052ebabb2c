package observe

import "errors"

// Errors returned by TelemetryConfig.Validate.
var (
	// ErrMissingServiceName indicates TelemetryConfig.ServiceName is empty.
	ErrMissingServiceName = errors.New("observe: service name is required")

	// ErrInvalidSamplePct indicates TracingConfig.SamplePct is outside [MinSamplePct, MaxSamplePct].
	ErrInvalidSamplePct = errors.New("observe: trace sample percentage out of range")

	// ErrInvalidTracingExporter indicates TracingConfig.Exporter names an unknown exporter.
	ErrInvalidTracingExporter = errors.New("observe: invalid tracing exporter")

	// ErrInvalidMetricsExporter indicates OTelMetricsConfig.Exporter names an unknown exporter.
	ErrInvalidMetricsExporter = errors.New("observe: invalid metrics exporter")
)

// Bounds for TracingConfig.SamplePct.
const (
	MinSamplePct = 0.0
	MaxSamplePct = 1.0
)

package service

import (
	"os"
	"strconv"
)

// Config holds a service's runtime configuration.
type Config struct {
	// Service is the name stamped on every log record and metric.
	Service string

	// ProjectID is the deployment identifier scoping the trace resource
	// name.
	ProjectID string

	// Port is the listen port.
	Port string

	// LogLevel is the minimum severity to emit.
	LogLevel string

	// MetricsEnabled gates the monitoring-metrics client. Decided here,
	// once; a disabled client is fully inert.
	MetricsEnabled bool

	// TraceExporter selects the span exporter: otlp|stdout|none.
	TraceExporter string

	// MetricExporter selects the OTel metrics exporter:
	// otlp|prometheus|stdout|none.
	MetricExporter string

	// TraceSamplePct is the trace sampling ratio in [0, 1].
	TraceSamplePct float64
}

// ConfigFromEnv loads a service configuration from the environment:
// GCP_PROJECT_ID, PORT, LOG_LEVEL, METRICS_ENABLED, TRACE_EXPORTER,
// METRIC_EXPORTER, TRACE_SAMPLE_PCT.
func ConfigFromEnv(serviceName string) Config {
	cfg := Config{
		Service:        serviceName,
		ProjectID:      envOr("GCP_PROJECT_ID", "local-dev"),
		Port:           envOr("PORT", "8080"),
		LogLevel:       envOr("LOG_LEVEL", "info"),
		TraceExporter:  envOr("TRACE_EXPORTER", "none"),
		MetricExporter: envOr("METRIC_EXPORTER", "none"),
		TraceSamplePct: 1.0,
	}

	if v, err := strconv.ParseBool(os.Getenv("METRICS_ENABLED")); err == nil {
		cfg.MetricsEnabled = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("TRACE_SAMPLE_PCT"), 64); err == nil {
		cfg.TraceSamplePct = v
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package exporters

import (
	"context"
	"errors"
	"testing"
)

func TestUnknownExporterNames(t *testing.T) {
	if _, err := NewTracingExporter(context.Background(), "zipkin"); !errors.Is(err, ErrUnknownExporter) {
		t.Errorf("tracing: err = %v, want ErrUnknownExporter", err)
	}
	if _, err := NewMetricsReader(context.Background(), "statsd"); !errors.Is(err, ErrUnknownExporter) {
		t.Errorf("metrics: err = %v, want ErrUnknownExporter", err)
	}
}

func TestStdoutExporters(t *testing.T) {
	exp, err := NewTracingExporter(context.Background(), "stdout")
	if err != nil {
		t.Fatalf("stdout tracing exporter: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil span exporter")
	}

	reader, err := NewMetricsReader(context.Background(), "stdout")
	if err != nil {
		t.Fatalf("stdout metrics reader: %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
}

func TestOtlpRequiresEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT", "")

	if _, err := NewTracingExporter(context.Background(), "otlp"); !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("tracing: err = %v, want ErrEndpointNotConfigured", err)
	}
	if _, err := NewMetricsReader(context.Background(), "otlp"); !errors.Is(err, ErrEndpointNotConfigured) {
		t.Errorf("metrics: err = %v, want ErrEndpointNotConfigured", err)
	}
}

func TestOtlpWithEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4317")

	exp, err := NewTracingExporter(context.Background(), "otlp")
	if err != nil {
		t.Fatalf("otlp tracing exporter: %v", err)
	}
	if exp == nil {
		t.Fatal("expected non-nil span exporter")
	}
}

func TestPrometheusReader(t *testing.T) {
	reader, err := NewMetricsReader(context.Background(), "prometheus")
	if err != nil {
		t.Fatalf("prometheus reader: %v", err)
	}
	if reader == nil {
		t.Fatal("expected non-nil reader")
	}
}

func TestNoneYieldsNil(t *testing.T) {
	for _, name := range []string{"none", ""} {
		exp, err := NewTracingExporter(context.Background(), name)
		if err != nil || exp != nil {
			t.Errorf("tracing %q: exp = %v, err = %v, want nil, nil", name, exp, err)
		}
		reader, err := NewMetricsReader(context.Background(), name)
		if err != nil || reader != nil {
			t.Errorf("metrics %q: reader = %v, err = %v, want nil, nil", name, reader, err)
		}
	}
}

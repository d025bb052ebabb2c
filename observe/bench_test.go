package observe

import (
	"context"
	"io"
	"testing"
	"time"
)

// BenchmarkLogger_Info measures logging throughput.
func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLogger(Config{Service: "bench", ProjectID: "p", Writer: io.Discard})
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "benchmark message", Field{Key: "iteration", Value: i})
	}
}

// BenchmarkLogger_Info_WithTraceContext measures logging with trace
// resolution on every call.
func BenchmarkLogger_Info_WithTraceContext(b *testing.B) {
	logger := NewLogger(Config{Service: "bench", ProjectID: "p", Writer: io.Discard})
	ctx := WithCorrelationID(context.Background(), "abc-123")
	ctx = WithTraceHeader(ctx, "105445aa7843bc8bf206b1200001000/123;o=1")
	fields := []Field{
		{Key: "field1", Value: "value1"},
		{Key: "field2", Value: 42},
		{Key: "field3", Value: true},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "benchmark message", fields...)
	}
}

// BenchmarkMetricsClient_RecordRequest measures buffered recording
// including the periodic flush.
func BenchmarkMetricsClient_RecordRequest(b *testing.B) {
	client := NewMetricsClient(MetricsConfig{
		Service: "bench",
		Enabled: true,
		Sink:    NewWriterSink(io.Discard),
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		client.RecordRequest("/bench", "GET", 200, time.Millisecond)
	}
}

// BenchmarkMetricsClient_Disabled measures the disabled fast path.
func BenchmarkMetricsClient_Disabled(b *testing.B) {
	client := NewMetricsClient(MetricsConfig{Service: "bench", Enabled: false})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		client.RecordRequest("/bench", "GET", 200, time.Millisecond)
	}
}

// BenchmarkResolveTraceContext measures header resolution.
func BenchmarkResolveTraceContext(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ResolveTraceContext("bench-project", "105445aa7843bc8bf206b1200001000/123;o=1")
	}
}

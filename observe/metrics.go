package observe

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Metric families emitted to the monitoring sink.
const (
	metricTypeRequest = "custom.googleapis.com/lean_hub/request_count"
	metricTypeError   = "custom.googleapis.com/lean_hub/error_count"
	metricTypeHealth  = "custom.googleapis.com/lean_hub/health_status"
)

// flushThreshold is the buffer size at which RecordRequest triggers an
// automatic flush.
const flushThreshold = 10

// bufferCap bounds the buffer when the sink keeps failing. Past the cap the
// oldest records are dropped and counted in the flush warning.
const bufferCap = 1000

// Metric is one buffered monitoring record. Implementations are the three
// record variants below; the interface is sealed.
type Metric interface {
	metricType() string
}

// RequestMetric records a single handled request.
type RequestMetric struct {
	MetricType string  `json:"metric_type"`
	Timestamp  string  `json:"timestamp"`
	Service    string  `json:"service"`
	Endpoint   string  `json:"endpoint"`
	Method     string  `json:"method"`
	StatusCode int     `json:"status_code"`
	DurationMS float64 `json:"duration_ms"`
	Success    bool    `json:"success"`
}

func (m RequestMetric) metricType() string { return m.MetricType }

// ErrorMetric records a single failure.
type ErrorMetric struct {
	MetricType   string `json:"metric_type"`
	Timestamp    string `json:"timestamp"`
	Service      string `json:"service"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
}

func (m ErrorMetric) metricType() string { return m.MetricType }

// HealthMetric records a service health observation.
type HealthMetric struct {
	MetricType string         `json:"metric_type"`
	Timestamp  string         `json:"timestamp"`
	Service    string         `json:"service"`
	Healthy    bool           `json:"healthy"`
	Details    map[string]any `json:"details"`
}

func (m HealthMetric) metricType() string { return m.MetricType }

// Sink receives flushed metric records.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: a non-nil error aborts the current batch; the client retains
//   the unemitted remainder.
type Sink interface {
	Emit(m Metric) error
}

// writerSink emits each record as one JSON document wrapped under a
// monitoring_metric key.
type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a Sink that writes newline-delimited JSON documents
// to w.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Emit(m Metric) error {
	data, err := json.Marshal(map[string]any{"monitoring_metric": m})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(data); err != nil {
		return err
	}
	_, err = s.w.Write([]byte("\n"))
	return err
}

// MetricsConfig holds the configuration for a MetricsClient.
type MetricsConfig struct {
	// Service is the name stamped on every record. Required.
	Service string

	// Enabled gates all recording. A disabled client is fully inert.
	Enabled bool

	// Sink receives flushed records. Defaults to a writer sink on
	// os.Stdout.
	Sink Sink

	// Diag receives flush-failure warnings. Optional.
	Diag *Logger
}

// MetricsClient buffers monitoring metrics in memory and flushes them in
// batches: automatically once RecordRequest fills the buffer to the
// threshold, or explicitly via Flush.
//
// Contract:
// - Concurrency: safe for concurrent use; the threshold fires exactly once
//   per crossing and emission runs outside the buffer lock.
// - Errors: recording and flushing never propagate sink failures; they are
//   reported through the diagnostic logger.
type MetricsClient struct {
	enabled bool
	service string
	sink    Sink
	diag    *Logger

	mu  sync.Mutex
	buf []Metric
}

// NewMetricsClient creates a MetricsClient. Whether metrics are emitted at
// all is decided here, once, by cfg.Enabled; every recording call on a
// disabled client is a no-op.
func NewMetricsClient(cfg MetricsConfig) *MetricsClient {
	sink := cfg.Sink
	if sink == nil {
		sink = NewWriterSink(os.Stdout)
	}
	return &MetricsClient{
		enabled: cfg.Enabled,
		service: cfg.Service,
		sink:    sink,
		diag:    cfg.Diag,
	}
}

// Enabled reports whether this client records metrics.
func (c *MetricsClient) Enabled() bool {
	return c.enabled
}

// RecordRequest buffers a request metric and flushes the buffer once it
// reaches the threshold.
func (c *MetricsClient) RecordRequest(endpoint, method string, statusCode int, duration time.Duration) {
	if !c.enabled {
		return
	}

	m := RequestMetric{
		MetricType: metricTypeRequest,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Service:    c.service,
		Endpoint:   endpoint,
		Method:     method,
		StatusCode: statusCode,
		DurationMS: float64(duration) / float64(time.Millisecond),
		Success:    statusCode >= 200 && statusCode < 300,
	}

	c.mu.Lock()
	c.buf = append(c.buf, m)
	var batch []Metric
	if len(c.buf) >= flushThreshold {
		batch = c.buf
		c.buf = nil
	}
	c.mu.Unlock()

	if batch != nil {
		c.emit(batch)
	}
}

// RecordError buffers an error metric. Errors never trigger an automatic
// flush.
func (c *MetricsClient) RecordError(errorType, errorMessage string) {
	if !c.enabled {
		return
	}
	c.append(ErrorMetric{
		MetricType:   metricTypeError,
		Timestamp:    time.Now().UTC().Format(time.RFC3339Nano),
		Service:      c.service,
		ErrorType:    errorType,
		ErrorMessage: errorMessage,
	})
}

// RecordHealth buffers a health metric. Health observations never trigger
// an automatic flush.
func (c *MetricsClient) RecordHealth(healthy bool, details map[string]any) {
	if !c.enabled {
		return
	}
	if details == nil {
		details = map[string]any{}
	}
	c.append(HealthMetric{
		MetricType: metricTypeHealth,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Service:    c.service,
		Healthy:    healthy,
		Details:    details,
	})
}

// Flush emits every buffered record in insertion order. A no-op when the
// client is disabled or the buffer is empty.
func (c *MetricsClient) Flush() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	batch := c.buf
	c.buf = nil
	c.mu.Unlock()

	if len(batch) > 0 {
		c.emit(batch)
	}
}

// Len returns the number of buffered records.
func (c *MetricsClient) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buf)
}

func (c *MetricsClient) append(m Metric) {
	c.mu.Lock()
	c.buf = append(c.buf, m)
	c.mu.Unlock()
}

// emit writes the batch to the sink. On the first sink failure the failed
// record and everything after it go back to the front of the buffer, ahead
// of records appended meanwhile, and a warning is logged.
func (c *MetricsClient) emit(batch []Metric) {
	for i, m := range batch {
		if err := c.sink.Emit(m); err != nil {
			retained := batch[i:]
			dropped := c.requeue(retained)
			if c.diag != nil {
				c.diag.Warning(context.Background(), "metrics flush failed",
					Field{Key: "error", Value: err.Error()},
					Field{Key: "emitted", Value: i},
					Field{Key: "retained", Value: len(retained) - dropped},
					Field{Key: "dropped", Value: dropped},
				)
			}
			return
		}
	}
}

// requeue puts unemitted records back at the front of the buffer, trimming
// the oldest past the cap. Returns the number of records dropped.
func (c *MetricsClient) requeue(records []Metric) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	merged := make([]Metric, 0, len(records)+len(c.buf))
	merged = append(merged, records...)
	merged = append(merged, c.buf...)

	dropped := 0
	if len(merged) > bufferCap {
		dropped = len(merged) - bufferCap
		merged = merged[dropped:]
	}
	c.buf = merged
	return dropped
}

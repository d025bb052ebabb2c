package observe

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type boomError struct{ msg string }

func (e *boomError) Error() string { return e.msg }

type statusResult struct{ status int }

func (r statusResult) StatusCode() int { return r.status }

// TestMonitor_SuccessDefaultStatus verifies a plain success records a 200
// request metric with a non-negative duration.
func TestMonitor_SuccessDefaultStatus(t *testing.T) {
	sink := newCaptureSink()
	monitor := NewMonitor(testMetricsClient(sink))

	wrapped := monitor.Wrap("/api/docs", "GET", func(ctx context.Context) (any, error) {
		return "ok", nil
	})

	result, err := wrapped(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("wrapper must pass the result through, got %v", result)
	}

	monitor.metrics.Flush()
	records := sink.emitted()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	req := records[0].(RequestMetric)
	if req.StatusCode != 200 || !req.Success {
		t.Errorf("expected a 200 success metric, got %+v", req)
	}
	if req.DurationMS < 0 {
		t.Errorf("expected non-negative duration, got %f", req.DurationMS)
	}
	if req.Endpoint != "/api/docs" || req.Method != "GET" {
		t.Errorf("unexpected endpoint identity: %+v", req)
	}
}

// TestMonitor_StatusCoderResult verifies the result's status code is used
// when the result exposes one.
func TestMonitor_StatusCoderResult(t *testing.T) {
	sink := newCaptureSink()
	monitor := NewMonitor(testMetricsClient(sink))

	wrapped := monitor.Wrap("/api/docs", "POST", func(ctx context.Context) (any, error) {
		return statusResult{status: 201}, nil
	})

	if _, err := wrapped(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	monitor.metrics.Flush()
	req := sink.emitted()[0].(RequestMetric)
	if req.StatusCode != 201 {
		t.Errorf("expected status 201 from the result, got %d", req.StatusCode)
	}
}

// TestMonitor_FailurePropagatesUnchanged verifies the wrapper records an
// error metric and a request metric, then returns the original error.
func TestMonitor_FailurePropagatesUnchanged(t *testing.T) {
	sink := newCaptureSink()
	monitor := NewMonitor(testMetricsClient(sink))

	boom := &boomError{msg: "boom"}
	wrapped := monitor.Wrap("/api/docs", "GET", func(ctx context.Context) (any, error) {
		return nil, boom
	})

	_, err := wrapped(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected the original error back, got %v", err)
	}
	if err.Error() != "boom" {
		t.Errorf("error message changed: %q", err.Error())
	}

	monitor.metrics.Flush()
	records := sink.emitted()

	var errMetrics []ErrorMetric
	var reqMetrics []RequestMetric
	for _, r := range records {
		switch m := r.(type) {
		case ErrorMetric:
			errMetrics = append(errMetrics, m)
		case RequestMetric:
			reqMetrics = append(reqMetrics, m)
		}
	}

	if len(errMetrics) != 1 {
		t.Fatalf("expected exactly one error metric, got %d", len(errMetrics))
	}
	if errMetrics[0].ErrorType != fmt.Sprintf("%T", boom) {
		t.Errorf("expected error type %q, got %q", fmt.Sprintf("%T", boom), errMetrics[0].ErrorType)
	}
	if errMetrics[0].ErrorMessage != "boom" {
		t.Errorf("expected error message boom, got %q", errMetrics[0].ErrorMessage)
	}

	if len(reqMetrics) != 1 {
		t.Fatalf("expected exactly one request metric on the failure path, got %d", len(reqMetrics))
	}
	if reqMetrics[0].StatusCode != 500 || reqMetrics[0].Success {
		t.Errorf("expected a 500 failure metric, got %+v", reqMetrics[0])
	}
	if reqMetrics[0].DurationMS < 0 {
		t.Errorf("expected non-negative duration, got %f", reqMetrics[0].DurationMS)
	}
}

// TestMonitor_DurationMeasured verifies the measured duration reflects the
// handler's execution time.
func TestMonitor_DurationMeasured(t *testing.T) {
	sink := newCaptureSink()
	monitor := NewMonitor(testMetricsClient(sink))

	wrapped := monitor.Wrap("/slow", "GET", func(ctx context.Context) (any, error) {
		time.Sleep(20 * time.Millisecond)
		return nil, nil
	})

	if _, err := wrapped(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	monitor.metrics.Flush()
	req := sink.emitted()[0].(RequestMetric)
	if req.DurationMS < 15 {
		t.Errorf("expected at least ~20ms duration, got %f", req.DurationMS)
	}
}

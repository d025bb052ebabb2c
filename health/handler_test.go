package health

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leanhub/platform/api"
	"github.com/leanhub/platform/observe"
)

type recordingSink struct {
	records []observe.Metric
}

func (s *recordingSink) Emit(m observe.Metric) error {
	s.records = append(s.records, m)
	return nil
}

// TestHandler_Healthy verifies a passing check answers 200 with the
// envelope and records a healthy metric.
func TestHandler_Healthy(t *testing.T) {
	agg := NewAggregator(time.Second)
	agg.Register(NewCheckerFunc("db", func(ctx context.Context) Result { return Healthy("ok") }))

	sink := &recordingSink{}
	metrics := observe.NewMetricsClient(observe.MetricsConfig{
		Service: "test-service",
		Enabled: true,
		Sink:    sink,
	})

	rec := httptest.NewRecorder()
	Handler(agg, metrics)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp api.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not an envelope: %v", err)
	}
	if !resp.Success {
		t.Error("expected success envelope")
	}
	data, _ := resp.Data.(map[string]any)
	if data["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", data["status"])
	}

	metrics.Flush()
	if len(sink.records) != 1 {
		t.Fatalf("expected one health metric, got %d", len(sink.records))
	}
	hm := sink.records[0].(observe.HealthMetric)
	if !hm.Healthy {
		t.Errorf("expected a healthy metric, got %+v", hm)
	}
	if _, ok := hm.Details["db"]; !ok {
		t.Errorf("expected check details in the metric, got %+v", hm.Details)
	}
}

// TestHandler_Unhealthy verifies a failing check answers 503 and records an
// unhealthy metric.
func TestHandler_Unhealthy(t *testing.T) {
	agg := NewAggregator(time.Second)
	agg.Register(NewCheckerFunc("db", func(ctx context.Context) Result {
		return Unhealthy("connection refused", ErrCheckFailed)
	}))

	sink := &recordingSink{}
	metrics := observe.NewMetricsClient(observe.MetricsConfig{
		Service: "test-service",
		Enabled: true,
		Sink:    sink,
	})

	rec := httptest.NewRecorder()
	Handler(agg, metrics)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	metrics.Flush()
	hm := sink.records[0].(observe.HealthMetric)
	if hm.Healthy {
		t.Errorf("expected an unhealthy metric, got %+v", hm)
	}
}

// TestHandler_NilMetrics verifies the handler works without a metrics
// client.
func TestHandler_NilMetrics(t *testing.T) {
	agg := NewAggregator(time.Second)

	rec := httptest.NewRecorder()
	Handler(agg, nil)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

// TestLivenessHandler verifies the probe endpoint.
func TestLivenessHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if string(body) != "OK" {
		t.Errorf("expected OK body, got %q", body)
	}
}

package observe

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// HandlerFunc is the function signature the Monitor wraps.
type HandlerFunc func(ctx context.Context) (any, error)

// StatusCoder is implemented by handler results that carry an HTTP status.
type StatusCoder interface {
	StatusCode() int
}

// Monitor wraps handlers to time their execution and feed the metrics
// client.
//
// Contract:
// - Concurrency: Wrap returns a handler safe for concurrent use.
// - Errors: handler errors are recorded and propagated unchanged; metrics
//   recording never replaces or masks them.
type Monitor struct {
	metrics *MetricsClient
}

// NewMonitor creates a Monitor feeding the given metrics client.
func NewMonitor(metrics *MetricsClient) *Monitor {
	return &Monitor{metrics: metrics}
}

// Wrap instruments fn: one request metric per call on every exit path, with
// the measured duration and the inferred status code (the result's
// StatusCode() when exposed, 200 otherwise, 500 on error), plus one error
// metric per failure carrying the error's type name and message.
func (m *Monitor) Wrap(endpoint, method string, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context) (any, error) {
		start := time.Now()
		status := http.StatusOK

		defer func() {
			m.metrics.RecordRequest(endpoint, method, status, time.Since(start))
		}()

		result, err := fn(ctx)
		if err != nil {
			status = http.StatusInternalServerError
			m.metrics.RecordError(fmt.Sprintf("%T", err), err.Error())
			return result, err
		}

		if sc, ok := result.(StatusCoder); ok {
			status = sc.StatusCode()
		}
		return result, nil
	}
}

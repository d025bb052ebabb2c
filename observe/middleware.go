package observe

import (
	"fmt"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// CorrelationMiddleware propagates the per-request correlation ID and Cloud
// Trace context. It reads X-Correlation-ID (minting a fresh UUID when the
// header is absent) and X-Cloud-Trace-Context, stores both in the request
// context, and echoes them on the response: the correlation ID always, the
// trace header only when one arrived. When logger is non-nil, each inbound
// request is logged once.
func CorrelationMiddleware(logger *Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			correlationID := r.Header.Get(HeaderCorrelationID)
			if correlationID == "" {
				correlationID = NewCorrelationID()
			}
			traceHeader := r.Header.Get(HeaderTraceContext)

			ctx := WithCorrelationID(r.Context(), correlationID)
			if traceHeader != "" {
				ctx = WithTraceHeader(ctx, traceHeader)
			}

			w.Header().Set(HeaderCorrelationID, correlationID)
			if traceHeader != "" {
				w.Header().Set(HeaderTraceContext, traceHeader)
			}

			if logger != nil {
				fields := []Field{
					{Key: "method", Value: r.Method},
					{Key: "path", Value: r.URL.Path},
				}
				if id := ExtractTraceID(traceHeader); id != "" {
					fields = append(fields, Field{Key: "trace_id", Value: id})
				}
				logger.Info(ctx, "Incoming request: "+r.Method+" "+r.URL.Path, fields...)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MonitorMiddleware feeds one request metric per handled request into the
// metrics client, using the written status code and the measured duration.
// Responses with 5xx status additionally record an error metric.
func MonitorMiddleware(metrics *MetricsClient) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				metrics.RecordRequest(r.URL.Path, r.Method, status, time.Since(start))
				if status >= http.StatusInternalServerError {
					metrics.RecordError(fmt.Sprintf("http_%d", status), r.Method+" "+r.URL.Path)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

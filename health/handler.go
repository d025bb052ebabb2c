package health

import (
	"net/http"

	"github.com/leanhub/platform/api"
	"github.com/leanhub/platform/observe"
)

// Handler returns the /health endpoint handler. It runs every registered
// check, answers with the standard envelope (503 when any check fails), and
// records one health metric per request when a metrics client is supplied.
func Handler(agg *Aggregator, metrics *observe.MetricsClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results := agg.CheckAll(r.Context())
		healthy := AllHealthy(results)

		details := make(map[string]any, len(results))
		for name, result := range results {
			detail := map[string]any{
				"status": result.Status.String(),
			}
			if result.Message != "" {
				detail["message"] = result.Message
			}
			if result.Error != nil {
				detail["error"] = result.Error.Error()
			}
			for k, v := range result.Details {
				detail[k] = v
			}
			details[name] = detail
		}

		if metrics != nil {
			metrics.RecordHealth(healthy, details)
		}

		status := "healthy"
		code := http.StatusOK
		message := "Service is operational"
		if !healthy {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
			message = "Service is degraded"
		}

		data := map[string]any{"status": status}
		for name, detail := range details {
			data[name] = detail
		}
		api.Respond(w, code, data, message)
	}
}

// LivenessHandler returns a minimal handler for liveness probes.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

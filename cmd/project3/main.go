// Command project3 serves the Project 3 status API: a reporting
// service exposing extended operational state alongside the shared
// health and version endpoints.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leanhub/platform/api"
	"github.com/leanhub/platform/observe"
	"github.com/leanhub/platform/service"
	"github.com/leanhub/platform/version"
)

const serviceVersion = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := service.ConfigFromEnv("project_3")

	s, err := service.New(ctx, cfg, serviceVersion)
	if err != nil {
		log.Fatalf("project3: %v", err)
	}

	started := time.Now()
	s.Router().Get("/", rootHandler(s))
	s.Router().Get("/status", statusHandler(s, started))

	if err := s.Run(ctx); err != nil {
		log.Fatalf("project3: %v", err)
	}
}

func rootHandler(s *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Log.Info(r.Context(), "Hello from Project 3",
			observe.Field{Key: "request", Value: "root"},
			observe.Field{Key: "lib_version", Value: version.Get().Version},
		)

		api.Respond(w, http.StatusOK, map[string]any{
			"service":            "Project 3",
			"message":            "Hello from Project 3!",
			"shared_lib_version": version.Get().Version,
			"service_version":    serviceVersion,
		}, "Project 3 API is running")
	}
}

func statusHandler(s *service.Service, started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Log.Info(r.Context(), "Status check requested",
			observe.Field{Key: "lib_version", Value: version.Get().Version},
		)

		api.Respond(w, http.StatusOK, map[string]any{
			"service":            "Project 3",
			"operational":        true,
			"uptime_seconds":     int64(time.Since(started).Seconds()),
			"shared_lib_version": version.Get().Version,
			"endpoints":          []string{"/", "/health", "/version", "/status"},
		}, "All systems operational")
	}
}

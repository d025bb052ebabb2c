// Command project1 serves the Project 1 API, a minimal HTTP service
// exercising the shared logging, correlation, and monitoring stack.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/leanhub/platform/api"
	"github.com/leanhub/platform/observe"
	"github.com/leanhub/platform/service"
	"github.com/leanhub/platform/version"
)

const serviceVersion = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := service.ConfigFromEnv("project_1")

	s, err := service.New(ctx, cfg, serviceVersion)
	if err != nil {
		log.Fatalf("project1: %v", err)
	}

	s.Router().Get("/", rootHandler(s))

	if err := s.Run(ctx); err != nil {
		log.Fatalf("project1: %v", err)
	}
}

func rootHandler(s *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		correlationID := observe.CorrelationIDFrom(ctx)

		s.Log.Info(ctx, "Hello from Project 1",
			observe.Field{Key: "request", Value: "root"},
			observe.Field{Key: "lib_version", Value: version.Get().Version},
		)

		api.Respond(w, http.StatusOK, map[string]any{
			"service":            "Project 1",
			"message":            "Hello from Project 1!",
			"shared_lib_version": version.Get().Version,
			"service_version":    serviceVersion,
			"correlation_id":     correlationID,
		}, "Project 1 API is running")
	}
}

// Command project2 serves the Project 2 retrieval API: document
// indexing and similarity queries behind the shared observability
// stack. The retrieval pipeline itself is simulated; the service
// carries the real request, logging, and metrics plumbing.
package main

import (
	"context"
	"encoding/json"
	"fmt"
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

const defaultTopK = 5

type documentRequest struct {
	Documents []string       `json:"documents"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type queryRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

type queryResult struct {
	Document string         `json:"document"`
	Score    float64        `json:"score"`
	Metadata map[string]any `json:"metadata"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := service.ConfigFromEnv("project_2_rag")

	s, err := service.New(ctx, cfg, serviceVersion)
	if err != nil {
		log.Fatalf("project2: %v", err)
	}

	s.Router().Get("/", rootHandler(s))
	s.Router().Post("/index", indexHandler(s))
	s.Router().Post("/query", queryHandler(s))

	if err := s.Run(ctx); err != nil {
		log.Fatalf("project2: %v", err)
	}
}

func rootHandler(s *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Log.Info(r.Context(), "Hello from Project 2 RAG",
			observe.Field{Key: "request", Value: "root"},
			observe.Field{Key: "lib_version", Value: version.Get().Version},
		)

		api.Respond(w, http.StatusOK, map[string]any{
			"service":            "Project 2 - RAG System",
			"message":            "Hello from RAG Service!",
			"shared_lib_version": version.Get().Version,
			"service_version":    serviceVersion,
		}, "RAG API is running")
	}
}

func indexHandler(s *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req documentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Respond(w, http.StatusBadRequest, nil, "invalid request body")
			return
		}

		s.Log.Info(r.Context(), "Indexing documents",
			observe.Field{Key: "doc_count", Value: len(req.Documents)},
		)

		api.Respond(w, http.StatusOK, map[string]any{
			"indexed_count": len(req.Documents),
			"status":        "success",
		}, fmt.Sprintf("Successfully indexed %d documents", len(req.Documents)))
	}
}

func queryHandler(s *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.Respond(w, http.StatusBadRequest, nil, "invalid request body")
			return
		}
		if req.TopK <= 0 {
			req.TopK = defaultTopK
		}

		s.Log.Info(r.Context(), "Processing RAG query",
			observe.Field{Key: "query_length", Value: len(req.Query)},
			observe.Field{Key: "top_k", Value: req.TopK},
		)

		results := make([]queryResult, req.TopK)
		for i := range results {
			results[i] = queryResult{
				Document: fmt.Sprintf("Sample document %d", i),
				Score:    0.95 - float64(i)*0.1,
				Metadata: map[string]any{"source": fmt.Sprintf("doc_%d", i)},
			}
		}

		api.Respond(w, http.StatusOK, map[string]any{
			"query":   req.Query,
			"results": results,
		}, "Query processed successfully")
	}
}

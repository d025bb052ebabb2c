package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leanhub/platform/observe"
	"github.com/leanhub/platform/version"
)

const shutdownTimeout = 10 * time.Second

// Run serves the router until ctx is cancelled, then shuts down gracefully:
// in-flight requests get the shutdown timeout to finish, buffered metrics
// are flushed, and the telemetry providers are drained.
func (s *Service) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.Log.Info(ctx, s.cfg.Service+" starting up",
		observe.Field{Key: "lib_version", Value: version.Get().Version},
		observe.Field{Key: "project_id", Value: s.cfg.ProjectID},
		observe.Field{Key: "port", Value: s.cfg.Port},
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err := g.Wait()

	s.Metrics.Flush()

	drainCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := s.Telemetry.Shutdown(drainCtx); shutdownErr != nil {
		s.Log.Warning(drainCtx, "telemetry shutdown failed",
			observe.Field{Key: "error", Value: shutdownErr.Error()},
		)
	}

	if err != nil {
		s.Log.Error(context.Background(), s.cfg.Service+" stopped with error",
			observe.Field{Key: "error", Value: err.Error()},
		)
		return err
	}

	s.Log.Info(context.Background(), s.cfg.Service+" stopped")
	return nil
}

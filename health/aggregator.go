package health

import (
	"context"
	"sync"
	"time"
)

// Aggregator combines multiple health checkers into one service-level check.
// Checks run in registration order; the whole run is bounded by a timeout.
type Aggregator struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []Checker
}

// NewAggregator creates an aggregator. A non-positive timeout defaults to
// five seconds.
func NewAggregator(timeout time.Duration) *Aggregator {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Aggregator{timeout: timeout}
}

// Register adds a checker. A checker with an already-registered name
// replaces the previous one.
func (a *Aggregator) Register(c Checker) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, existing := range a.checkers {
		if existing.Name() == c.Name() {
			a.checkers[i] = c
			return
		}
	}
	a.checkers = append(a.checkers, c)
}

// CheckAll runs every registered check and returns the results keyed by
// checker name. A check that outlives the run's deadline reports unhealthy
// with ErrCheckTimeout.
func (a *Aggregator) CheckAll(ctx context.Context) map[string]Result {
	a.mu.RLock()
	checkers := make([]Checker, len(a.checkers))
	copy(checkers, a.checkers)
	a.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	results := make(map[string]Result, len(checkers))
	for _, c := range checkers {
		results[c.Name()] = runCheck(ctx, c)
	}
	return results
}

// AllHealthy reports whether every result is healthy. An empty result set
// counts as healthy.
func AllHealthy(results map[string]Result) bool {
	for _, r := range results {
		if r.Status != StatusHealthy {
			return false
		}
	}
	return true
}

func runCheck(ctx context.Context, c Checker) Result {
	start := time.Now()
	resultCh := make(chan Result, 1)

	go func() {
		resultCh <- c.Check(ctx)
	}()

	select {
	case result := <-resultCh:
		if result.Timestamp.IsZero() {
			result.Timestamp = start
		}
		return result
	case <-ctx.Done():
		return Result{
			Status:    StatusUnhealthy,
			Message:   "check timed out",
			Error:     ErrCheckTimeout,
			Timestamp: start,
		}
	}
}

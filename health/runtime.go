package health

import (
	"context"
	"fmt"
	"runtime"
)

// RuntimeChecker reports process runtime health: heap usage and goroutine
// count. It is the default checker every service registers.
type RuntimeChecker struct {
	// MaxGoroutines marks the service unhealthy when exceeded.
	// Zero disables the bound.
	MaxGoroutines int
}

// Name returns the name of this checker.
func (c *RuntimeChecker) Name() string {
	return "runtime"
}

// Check reads runtime statistics.
func (c *RuntimeChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	goroutines := runtime.NumGoroutine()

	details := map[string]any{
		"heap_alloc_bytes": stats.HeapAlloc,
		"heap_sys_bytes":   stats.HeapSys,
		"num_gc":           stats.NumGC,
		"goroutines":       goroutines,
	}

	if c.MaxGoroutines > 0 && goroutines > c.MaxGoroutines {
		return Unhealthy(
			fmt.Sprintf("goroutine count %d exceeds limit %d", goroutines, c.MaxGoroutines),
			ErrCheckFailed,
		).WithDetails(details)
	}

	return Healthy("runtime normal").WithDetails(details)
}

package health

import "errors"

// Sentinel errors carried in a Result when a checker fails or overruns
// its deadline. Handlers report them in the check details; they never
// abort the aggregate run.
var (
	ErrCheckFailed  = errors.New("health: check failed")
	ErrCheckTimeout = errors.New("health: check timed out")
)

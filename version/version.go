// Package version exposes the shared-library build information reported by
// every Lean Hub service.
package version

import (
	"time"
)

const (
	defaultVersion = "1.0.0"

	library     = "platform"
	description = "Lean Hub Shared Utilities"
)

// Version is the shared-library version. Overridable at build time via
// -ldflags "-X github.com/leanhub/platform/version.Version=<value>".
var Version = defaultVersion

// Info describes the shared library build.
type Info struct {
	Version     string `json:"version"`
	Library     string `json:"library"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// Get returns the shared-library version information, stamped with the
// current time.
func Get() Info {
	return Info{
		Version:     Version,
		Library:     library,
		Description: description,
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
	}
}

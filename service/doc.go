// Package service provides the HTTP chassis shared by the Lean Hub
// services: environment configuration, router assembly with the
// observability middleware, the common endpoints, and the serve/shutdown
// lifecycle.
package service

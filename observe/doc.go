// Package observe provides the shared observability core for the Lean Hub
// services: correlation-ID propagation, Cloud Trace context resolution,
// structured JSON logging, and a buffered monitoring-metrics client.
//
// It is a pure instrumentation library: no routing, no business logic, no
// I/O beyond the configured log writer and metric sink. Services wire it in
// through the HTTP middleware in this package.
package observe

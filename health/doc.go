// Package health provides the health checking layer shared by the Lean Hub
// services: per-component checkers, an aggregator computing overall service
// status, and an HTTP handler that reports the result in the standard
// response envelope while recording a health metric.
package health

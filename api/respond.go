// Package api defines the response envelope shared by all Lean Hub services.
package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response is the standardized envelope every endpoint returns.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// NewResponse builds an envelope around data, stamped with the current time.
func NewResponse(data any, success bool, message string) Response {
	return Response{
		Success:   success,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}

// Respond writes an envelope as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(NewResponse(data, status < http.StatusBadRequest, message))
}

// Error writes a failure envelope as JSON with the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(NewResponse(nil, false, message))
}

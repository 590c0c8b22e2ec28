package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON error body every endpoint returns on failure.
// Messages are deliberately generic; internals never leak to the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body for endpoints that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code. It sets
// Content-Type and no-store cache headers, which token responses require.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the standard error body with the given status code.
func WriteError(w http.ResponseWriter, code int, msg string) {
	WriteJSON(w, code, ErrorResponse{Error: msg})
}

// NoCache sets Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON response body with the given status. Encoding
// errors are discarded since the status line is already committed; use this
// for handler responses, not streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes the standard {"error": message} payload.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

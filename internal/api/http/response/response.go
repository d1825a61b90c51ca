// Package response writes JSON bodies for the HTTP API.
package response

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Message is the body shape used for error replies.
type Message struct {
	Message string `json:"message"`
}

// Success is the body shape used by cookie endpoints.
type Success struct {
	Success bool `json:"success"`
}

// JSON encodes v with status. A nil v is written as the JSON literal null.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"message": msg} with status.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Message{Message: msg})
}

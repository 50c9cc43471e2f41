// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/greeter/greeter/internal/model"
)

// Handler wraps application dependencies for HTTP handlers.
type Handler struct {
	settings model.Settings
}

// New creates a new Handler instance.
func New(settings model.Settings) *Handler {
	return &Handler{settings: settings}
}

// Root renders the greeting page with the configured secret.
// The secret is written verbatim, without HTML escaping.
// GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	body := "<h1>Rust server</h1> <p>My secret: " + h.settings.Secret + "</p>"
	writeBody(w, http.StatusOK, "text/html; charset=utf-8", body)
}

// Users returns the fixed demo user listing.
// GET /api/users
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.DemoUsers())
}

// NotFound handles 404 responses, including method mismatches on known paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeBody(w, http.StatusNotFound, "text/plain; charset=utf-8", "Route not found")
}

// writeJSON writes a compact JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func writeBody(w http.ResponseWriter, status int, contentType, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

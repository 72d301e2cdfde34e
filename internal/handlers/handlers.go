package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vincentkoh/portfolio-backend/internal/session"
	"github.com/vincentkoh/portfolio-backend/internal/storage"
)

// Handler holds the HTTP handlers and their injected dependencies.
type Handler struct {
	store         storage.Storage
	sessions      session.Store
	secureCookies bool
}

// New creates a Handler backed by the given storage and session store.
// secureCookies should be true behind HTTPS (production).
func New(store storage.Storage, sessions session.Store, secureCookies bool) *Handler {
	return &Handler{
		store:         store,
		sessions:      sessions,
		secureCookies: secureCookies,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError sends a structured error body. Messages are human-readable and
// never contain internals.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

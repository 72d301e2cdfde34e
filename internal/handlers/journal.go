package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vincentkoh/portfolio-backend/internal/middleware"
	"github.com/vincentkoh/portfolio-backend/internal/models"
	"github.com/vincentkoh/portfolio-backend/internal/storage"
)

type CreateJournalEntryRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Mood      string   `json:"mood"`
	Tags      []string `json:"tags"`
	IsPrivate *bool    `json:"isPrivate"`
}

// ListJournalEntries returns the current user's entries, newest first.
func (h *Handler) ListJournalEntries(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	entries, err := h.store.GetJournalEntries(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// CreateJournalEntry creates an entry owned by the current user. The owner is
// always taken from the session, never from the body.
func (h *Handler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var req CreateJournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	isPrivate := true
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	entry, err := h.store.CreateJournalEntry(r.Context(), models.InsertJournalEntry{
		UserID:    user.ID,
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		Tags:      req.Tags,
		IsPrivate: isPrivate,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create journal entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

// GetJournalEntry returns one entry by id if it belongs to the current user.
func (h *Handler) GetJournalEntry(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.ownedEntry(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// UpdateJournalEntry merges a partial update into an owned entry.
func (h *Handler) UpdateJournalEntry(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.ownedEntry(w, r)
	if !ok {
		return
	}

	var update models.JournalEntryUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.store.UpdateJournalEntry(r.Context(), entry.ID, update)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update journal entry")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// DeleteJournalEntry removes an owned entry.
func (h *Handler) DeleteJournalEntry(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.ownedEntry(w, r)
	if !ok {
		return
	}

	if _, err := h.store.DeleteJournalEntry(r.Context(), entry.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete journal entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Journal entry deleted successfully"})
}

// ownedEntry loads the entry from the id path parameter and enforces
// ownership. An entry owned by someone else is reported as 403, not 404.
func (h *Handler) ownedEntry(w http.ResponseWriter, r *http.Request) (*models.JournalEntry, bool) {
	user, _ := middleware.UserFrom(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid journal entry id")
		return nil, false
	}

	entry, err := h.store.GetJournalEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Journal entry not found")
		} else {
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return nil, false
	}

	if entry.UserID != user.ID {
		writeError(w, http.StatusForbidden, "Access denied")
		return nil, false
	}

	return entry, true
}

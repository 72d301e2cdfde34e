package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vincentkoh/portfolio-backend/internal/models"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact handles the public contact form.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "Email is invalid")
		return
	}
	if req.Subject == "" {
		writeError(w, http.StatusBadRequest, "Subject is required")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}
	if len(req.Message) < 10 {
		writeError(w, http.StatusBadRequest, "Message must be at least 10 characters long")
		return
	}

	msg, err := h.store.CreateContactMessage(r.Context(), models.InsertContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save message")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int{"id": msg.ID})
}

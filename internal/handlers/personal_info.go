package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vincentkoh/portfolio-backend/internal/middleware"
	"github.com/vincentkoh/portfolio-backend/internal/models"
	"github.com/vincentkoh/portfolio-backend/internal/storage"
)

type PersonalInfoRequest struct {
	FullName    *string                `json:"fullName"`
	BirthDate   *string                `json:"birthDate"`
	Residence   *string                `json:"residence"`
	Spouse      *string                `json:"spouse"`
	Bio         *string                `json:"bio"`
	Ambitions   *string                `json:"ambitions"`
	PrivateData map[string]interface{} `json:"privateData"`
}

// GetPersonalInfo returns the current user's record, or JSON null if none
// exists yet. A missing record is not an error.
func (h *Handler) GetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	info, err := h.store.GetPersonalInfo(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// SavePersonalInfo upserts the current user's record: fields present in the
// body are merged into an existing record, otherwise a record is created.
// The owner is always taken from the session, never from the body.
func (h *Handler) SavePersonalInfo(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var req PersonalInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	existing, err := h.store.GetPersonalInfo(r.Context(), user.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if existing != nil {
		updated, err := h.store.UpdatePersonalInfo(r.Context(), existing.ID, models.PersonalInfoUpdate{
			FullName:    req.FullName,
			BirthDate:   req.BirthDate,
			Residence:   req.Residence,
			Spouse:      req.Spouse,
			Bio:         req.Bio,
			Ambitions:   req.Ambitions,
			PrivateData: req.PrivateData,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to update personal info")
			return
		}
		writeJSON(w, http.StatusOK, updated)
		return
	}

	if req.FullName == nil || *req.FullName == "" {
		writeError(w, http.StatusBadRequest, "Full name is required")
		return
	}

	insert := models.InsertPersonalInfo{
		UserID:      user.ID,
		FullName:    *req.FullName,
		PrivateData: req.PrivateData,
	}
	if req.BirthDate != nil {
		insert.BirthDate = *req.BirthDate
	}
	if req.Residence != nil {
		insert.Residence = *req.Residence
	}
	if req.Spouse != nil {
		insert.Spouse = *req.Spouse
	}
	if req.Bio != nil {
		insert.Bio = *req.Bio
	}
	if req.Ambitions != nil {
		insert.Ambitions = *req.Ambitions
	}

	info, err := h.store.CreatePersonalInfo(r.Context(), insert)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save personal info")
		return
	}

	writeJSON(w, http.StatusOK, info)
}

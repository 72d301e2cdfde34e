package handlers

import (
	"net/http"

	"github.com/vincentkoh/portfolio-backend/internal/middleware"
	"github.com/vincentkoh/portfolio-backend/internal/models"
	"github.com/vincentkoh/portfolio-backend/internal/session"
)

// DeactivateAccount marks the current user inactive and destroys the session.
// A deactivated user can no longer sign in, by password or access code.
func (h *Handler) DeactivateAccount(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	inactive := false
	if _, err := h.store.UpdateUser(r.Context(), user.ID, models.UserUpdate{IsActive: &inactive}); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to deactivate account")
		return
	}

	if cookie, err := r.Cookie(session.CookieName); err == nil {
		h.sessions.Delete(r.Context(), cookie.Value)
	}
	h.clearSessionCookie(w)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Account deactivated"})
}

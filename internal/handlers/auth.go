package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vincentkoh/portfolio-backend/internal/middleware"
	"github.com/vincentkoh/portfolio-backend/internal/models"
	"github.com/vincentkoh/portfolio-backend/internal/session"
	"github.com/vincentkoh/portfolio-backend/internal/storage"
	"github.com/vincentkoh/portfolio-backend/pkg/utils"
)

type RegisterRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	AccessCode string `json:"accessCode"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AccessLoginRequest struct {
	AccessCode string `json:"accessCode"`
}

// Register creates a new account and logs it in. The response never includes
// the password hash.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	_, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err == nil {
		writeError(w, http.StatusBadRequest, "Username already exists")
		return
	}
	if !errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Use the client-supplied access code or mint a fresh one
	accessCode := utils.NormalizeAccessCode(req.AccessCode)
	if accessCode == "" {
		accessCode, err = utils.GenerateAccessCode()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.store.CreateUser(r.Context(), models.InsertUser{
		Username:   req.Username,
		Password:   hashed,
		AccessCode: accessCode,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// Auto login after registration
	if err := h.establishSession(w, r, user.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login authenticates with username and password. Failures are
// undifferentiated so usernames cannot be enumerated.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
		} else {
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if !user.IsActive || !utils.VerifyPassword(req.Password, user.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := h.establishSession(w, r, user.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// AccessLogin authenticates with the short access code alone. This path
// deliberately skips password verification; it only matches active users.
func (h *Handler) AccessLogin(w http.ResponseWriter, r *http.Request) {
	var req AccessLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	code := utils.NormalizeAccessCode(req.AccessCode)
	if code == "" {
		writeError(w, http.StatusBadRequest, "Access code is required")
		return
	}

	user, err := h.store.GetUserByAccessCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid access code")
		} else {
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if err := h.establishSession(w, r, user.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Logout destroys the current session. Calling it without one still succeeds.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		h.sessions.Delete(r.Context(), cookie.Value)
	}
	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me returns the authenticated user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request, userID int) error {
	token, err := h.sessions.Create(r.Context(), userID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(session.TTL / time.Second),
	})
	return nil
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

package middleware

import (
	"context"
	"net/http"

	"github.com/vincentkoh/portfolio-backend/internal/models"
	"github.com/vincentkoh/portfolio-backend/internal/session"
	"github.com/vincentkoh/portfolio-backend/internal/storage"
)

type contextKey string

const userKey contextKey = "currentUser"

// RequireAuth validates the session cookie and injects the authenticated user
// into the request context. Requests without a valid session are rejected
// before reaching any handler, so handlers may assume UserFrom succeeds.
func RequireAuth(sessions session.Store, store storage.Storage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				unauthorized(w)
				return
			}

			userID, ok, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil || !ok {
				unauthorized(w)
				return
			}

			user, err := store.GetUser(r.Context(), userID)
			if err != nil {
				// Session refers to a user that no longer resolves.
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the authenticated user placed in the context by RequireAuth.
func UserFrom(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"message":"Authentication required"}`))
}

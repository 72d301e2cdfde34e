package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/vincentkoh/portfolio-backend/internal/handlers"
	"github.com/vincentkoh/portfolio-backend/internal/middleware"
	"github.com/vincentkoh/portfolio-backend/internal/session"
	"github.com/vincentkoh/portfolio-backend/internal/storage"
)

// Setup registers all API routes. Everything under /api/private goes through
// the session guard.
func Setup(r chi.Router, h *handlers.Handler, sessions session.Store, store storage.Storage) {
	requireAuth := middleware.RequireAuth(sessions, store)

	// Auth routes
	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)
	r.Post("/api/access", h.AccessLogin)
	r.Post("/api/logout", h.Logout)
	r.With(requireAuth).Get("/api/user", h.Me)

	// Public contact form
	r.Post("/api/contact", h.SubmitContact)

	// Private namespace
	r.Route("/api/private", func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/personal-info", h.GetPersonalInfo)
		r.Post("/personal-info", h.SavePersonalInfo)

		r.Get("/journal", h.ListJournalEntries)
		r.Post("/journal", h.CreateJournalEntry)
		r.Get("/journal/{id}", h.GetJournalEntry)
		r.Put("/journal/{id}", h.UpdateJournalEntry)
		r.Delete("/journal/{id}", h.DeleteJournalEntry)

		r.Get("/messages", h.ListContactMessages)
		r.Get("/messages/{id}", h.GetContactMessage)

		r.Post("/deactivate", h.DeactivateAccount)
	})
}

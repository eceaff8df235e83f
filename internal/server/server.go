// Package server exposes tally's HTTP JSON API.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/evanmoss/tally/internal/analytics"
	"github.com/evanmoss/tally/internal/auth"
	"github.com/evanmoss/tally/internal/store"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	db       *store.DB
	sessions *auth.Manager
	clock    analytics.Clock
	origins  []string
}

// New creates a server. A nil clock uses the system clock.
func New(db *store.DB, sessions *auth.Manager, clock analytics.Clock, corsOrigins []string) *Server {
	if clock == nil {
		clock = analytics.SystemClock
	}
	return &Server{db: db, sessions: sessions, clock: clock, origins: corsOrigins}
}

// Router builds the chi route tree.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Allow credentials so the session cookie travels with API calls.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/signin", s.handleSignin)
		r.Post("/signout", s.handleSignout)
		r.Get("/session", s.handleSession)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(s.sessions.Middleware)

		r.Route("/habits", func(r chi.Router) {
			r.Get("/", s.handleListHabits)
			r.Post("/", s.handleCreateHabit)
			r.Get("/presets", s.handlePresets)
			r.Get("/{id}", s.handleGetHabit)
			r.Put("/{id}", s.handleUpdateHabit)
			r.Delete("/{id}", s.handleArchiveHabit)
			r.Get("/{id}/periods", s.handlePeriods)
		})

		r.Route("/logs", func(r chi.Router) {
			r.Get("/", s.handleListLogs)
			r.Post("/", s.handleUpsertLog)
			r.Delete("/{id}", s.handleDeleteLog)
		})

		r.Get("/analytics", s.handleAnalytics)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

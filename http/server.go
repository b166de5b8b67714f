// Package http provides the HTTP API and dashboard pages for luminary.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/luminary"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the luminary HTTP server. It exposes a JSON API plus a
// server-rendered profile page.
type Server struct {
	router   chi.Router
	logger   *slog.Logger
	sessions *sessionStore

	Profiles    luminary.ProfileService
	Biographies luminary.BiographyService
	Quotes      luminary.QuoteService
	Knowledge   luminary.KnowledgeService
	RolePlayer  luminary.RolePlayer
	Lessons     luminary.LessonGenerator
	Favorites   luminary.FavoriteService
}

// NewServer creates and configures the HTTP server.
func NewServer(logger *slog.Logger) *Server {
	s := &Server{logger: logger, sessions: newSessionStore()}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.logger))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/profile/{name}", s.handleProfile)
		r.Get("/timeline/{name}", s.handleTimeline)
		r.Get("/works/{name}", s.handleWorks)
		r.Get("/quotes/{name}", s.handleQuotes)
		r.Get("/fields", s.handleFields)
		r.Get("/explore/{field}", s.handleExplore)
		r.Get("/daily", s.handleDaily)
		r.Get("/featured", s.handleFeatured)
		r.Post("/chat", s.handleChat)
		r.Post("/lessons", s.handleLessons)
		r.Get("/favorites", s.handleListFavorites)
		r.Post("/favorites", s.handleAddFavorite)
		r.Delete("/favorites/{name}", s.handleRemoveFavorite)
		r.Post("/session", s.handleCreateSession)
		r.Get("/session/{id}", s.handleGetSession)
		r.Patch("/session/{id}", s.handleUpdateSession)
		r.Delete("/session/{id}", s.handleDeleteSession)
	})

	r.Get("/profile/{name}", s.handleProfilePage)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps application error codes to HTTP statuses and writes a
// JSON error body.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFromCode(luminary.ErrorCode(err)), map[string]string{
		"error": luminary.ErrorMessage(err),
		"code":  luminary.ErrorCode(err),
	})
}

func statusFromCode(code string) int {
	switch code {
	case luminary.EINVALID:
		return http.StatusBadRequest
	case luminary.ENOTFOUND:
		return http.StatusNotFound
	case luminary.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

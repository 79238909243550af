// Package api provides the HTTP server and handlers for the notes API.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"notes-api/internal/http/response"
	"notes-api/internal/metrics"
	"notes-api/internal/service"
)

const apiVersion = "0.0.1"

// Options configures the HTTP surface.
type Options struct {
	AppName        string
	AllowedOrigins []string
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	notes      *service.NoteService
	categories *service.CategoryService
	db         *gorm.DB
	metrics    *metrics.Metrics
	opts       Options
	router     *chi.Mux
	logger     *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(notes *service.NoteService, categories *service.CategoryService, db *gorm.DB, m *metrics.Metrics, opts Options, logger *zap.Logger) *Server {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	s := &Server{
		notes:      notes,
		categories: categories,
		db:         db,
		metrics:    m,
		opts:       opts,
		router:     chi.NewRouter(),
		logger:     logger.Named("http"),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(s.instrument)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Resource not found", s.logger)
	})

	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealthCheck)
	s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/notes", s.noteRoutes)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.handleListCategories)
			r.Get("/{id}", s.handleGetCategory)
			r.Get("/{id}/notes", s.handleListCategoryNotes)
		})
	})

	// Unversioned alias kept for older clients.
	s.router.Route("/notes", s.noteRoutes)
}

func (s *Server) noteRoutes(r chi.Router) {
	r.Post("/", s.handleCreateNote)
	r.Get("/", s.handleListNotes)
	r.Get("/{id}", s.handleGetNote)
	r.Patch("/{id}", s.handleUpdateNote)
	r.Delete("/{id}", s.handleDeleteNote)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"message": "Welcome to the " + s.opts.AppName,
		"version": apiVersion,
		"notes":   "/api/v1/notes/",
	}, s.logger)
}

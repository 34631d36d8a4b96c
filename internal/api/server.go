package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/readable-app/readable/internal/config"
	"github.com/readable-app/readable/internal/stats"
	"github.com/readable-app/readable/internal/store"
)

// Server is the HTTP API for the ReadAble engine.
type Server struct {
	router chi.Router
	docs   *store.Store
	log    *slog.Logger
	cfg    config.Config

	buildStats  *stats.Window
	answerStats *stats.Window
}

// NewServer creates and configures the HTTP server.
func NewServer(docs *store.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		docs:        docs,
		log:         log,
		cfg:         cfg,
		buildStats:  stats.NewWindow(cfg.StatsWindow),
		answerStats: stats.NewWindow(cfg.StatsWindow),
	}
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
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Engine endpoints; authenticated when an API key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/documents", s.handleCreateDocument)
		r.Get("/api/documents", s.handleListDocuments)
		r.Get("/api/documents/{docID}", s.handleGetDocument)
		r.Delete("/api/documents/{docID}", s.handleDeleteDocument)
		r.Get("/api/documents/{docID}/export", s.handleExportDocument)
		r.Post("/api/documents/{docID}/ask", s.handleAsk)

		r.Post("/api/ingest", s.handleIngest)
		r.Post("/api/segment", s.handleSegment)
		r.Get("/api/stats/engine", s.handleEngineStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// Package server provides the HTTP API for LegalSimplify.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/aatif-shaikh19/LegalSimplify/internal/config"
	"github.com/aatif-shaikh19/LegalSimplify/internal/session"
)

// Server is the HTTP server for the LegalSimplify API.
type Server struct {
	store  *session.Store
	config *config.Config
	logger *zap.Logger
	server *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(store *session.Store, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		store:  store,
		config: cfg,
		logger: logger,
	}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Route("/api/v1/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Post("/upload", s.handleCreateSessionUpload)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Put("/document", s.handleSetDocument)
			r.Put("/file", s.handleSetDocumentUpload)
			r.Post("/summary", s.handleSummarize)
			r.Post("/ask", s.handleAsk)
			r.Get("/chat", s.handleChat)
			r.Get("/risks", s.handleRisks)
		})
	})
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

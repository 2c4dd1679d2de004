package server

import (
	"context"
	"net/http"

	"github.com/recipeshare/backend/config"
)

// Server wraps the HTTP server lifecycle.
type Server struct {
	http *http.Server
}

// New creates a server serving handler on the configured port.
func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: handler,
		},
	}
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, letting in-flight requests finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

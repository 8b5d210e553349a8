package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/rs/zerolog"
)

// Config holds the development order service settings.
type Config struct {
	ListenAddress string
	Token         string // empty disables auth, for local experiments
	DBPath        string
}

// Server is a small order service for local development: it implements the
// HTTP contract the board client consumes, backed by SQLite.
type Server struct {
	httpServer *http.Server
	db         *sql.DB
}

// New opens the database and builds the HTTP server.
func New(cfg Config, log zerolog.Logger) (*Server, error) {
	db, err := OpenDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: newRouter(NewStore(db), cfg.Token, log),
	}
	return &Server{httpServer: srv, db: db}, nil
}

// Start serves until Shutdown or a listener error.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and closes the database.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}

// Package httpapi exposes the vault over HTTP: form-driven page routes for
// registration and login, and JSON routes for the encrypted entries. It is a
// thin translation layer; identity is resolved once per request by the
// session middleware and threaded through as an explicit user ID.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/services"
	"github.com/dmitrijs2005/passvault/internal/server/session"
)

type Server struct {
	address  string
	mux      *http.ServeMux
	logger   logging.Logger
	sessions *session.Manager
	users    *services.UserService
	salts    *services.SaltService
	entries  *services.EntryService
}

func NewServer(a string, l logging.Logger, sm *session.Manager, us *services.UserService, ss *services.SaltService, es *services.EntryService) *Server {
	s := &Server{
		address:  a,
		mux:      http.NewServeMux(),
		logger:   l.With("module", "http_server"),
		sessions: sm,
		users:    us,
		salts:    ss,
		entries:  es,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /register", s.handleRegisterForm)
	s.mux.HandleFunc("POST /register", s.handleRegister)
	s.mux.HandleFunc("GET /login", s.handleLoginForm)
	s.mux.HandleFunc("POST /login", s.handleLogin)
	s.mux.HandleFunc("/logout", s.handleLogout)
	s.mux.HandleFunc("GET /dashboard", s.withUser(redirectToLogin, s.handleDashboard))

	s.mux.HandleFunc("POST /api/save-password", s.withUser(respondUnauthorized, s.handleSavePassword))
	s.mux.HandleFunc("GET /api/get-passwords", s.withUser(respondUnauthorized, s.handleGetPasswords))
	s.mux.HandleFunc("POST /api/delete-password/{id}", s.withUser(respondUnauthorized, s.handleDeletePassword))
	s.mux.HandleFunc("GET /api/check-session", s.withUser(respondUnauthorized, s.handleCheckSession))
}

// Handler exposes the routed mux, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

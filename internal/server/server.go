package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/hongminglow/techjobbkk/internal/config"
	"github.com/hongminglow/techjobbkk/internal/http/handlers"
	"github.com/hongminglow/techjobbkk/internal/jobs"
	"github.com/hongminglow/techjobbkk/internal/middleware"
	"github.com/hongminglow/techjobbkk/internal/profile"
	"github.com/hongminglow/techjobbkk/internal/session"
	"github.com/hongminglow/techjobbkk/internal/storage"
)

// Deps are the collaborators the routes are built on.
type Deps struct {
	Users    storage.UserStore
	Jobs     storage.JobStore
	Sessions session.Store
	// Logos is optional.
	Logos  handlers.LogoLinker
	Logger *slog.Logger
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, deps Deps) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           Routes(cfg, deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Routes builds the full handler chain.
func Routes(cfg config.Config, deps Deps) http.Handler {
	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(deps.Users, deps.Sessions, deps.Logger).Register(mux)
	handlers.NewNavHandler().Register(mux)
	handlers.NewProfileHandler(deps.Users, profile.NewService(deps.Users), deps.Logos, deps.Logger).Register(mux)
	handlers.NewJobHandler(jobs.NewService(deps.Jobs), deps.Logger).Register(mux)

	withSession := middleware.Session(deps.Sessions, deps.Logger, mux)
	return middleware.CORS(cfg.CORSOrigins, middleware.Logging(deps.Logger, withSession))
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}

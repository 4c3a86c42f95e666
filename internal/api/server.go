// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/elementadmin/internal/platform/config"
	"github.com/taibuivan/elementadmin/internal/platform/constants"
	"github.com/taibuivan/elementadmin/internal/platform/metrics"
	"github.com/taibuivan/elementadmin/internal/platform/middleware"
	"github.com/taibuivan/elementadmin/internal/system/auth"
	"github.com/taibuivan/elementadmin/internal/system/department"
	"github.com/taibuivan/elementadmin/internal/system/file"
	"github.com/taibuivan/elementadmin/internal/system/loginrecord"
	"github.com/taibuivan/elementadmin/internal/system/menu"
	"github.com/taibuivan/elementadmin/internal/system/permission"
	"github.com/taibuivan/elementadmin/internal/system/project"
	"github.com/taibuivan/elementadmin/internal/system/role"
	"github.com/taibuivan/elementadmin/internal/system/user"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	Health  *HealthHandler
	Metrics *metrics.Metrics

	Auth        *auth.Handler
	User        *user.Handler
	Permission  *permission.Handler
	Menu        *menu.Handler
	Role        *role.Handler
	Department  *department.Handler
	Project     *project.Handler
	File        *file.Handler
	LoginRecord *loginrecord.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, sessions middleware.SessionResolver, h Handlers) *Server {
	r := NewRouter(context, cfg, log, sessions, h)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

/*
NewRouter builds the middleware chain and registers every route.

Route groups:

  - /health, /ready, /metrics: probes at the root.
  - {prefix}/health/*: public health and system info.
  - {prefix}/user/login, logout, authorizeToken: read the token themselves.
  - {prefix}/file/download/{id}, getFileById: plain browser links.
  - Everything else requires a live session.
*/
func NewRouter(context context.Context, cfg *config.Config, log *slog.Logger, sessions middleware.SessionResolver, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	if h.Metrics != nil {
		r.Use(h.Metrics.Middleware)
	}
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Authenticate(sessions))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Health.Liveness)
	r.Get("/ready", h.Health.Ready)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics.Handler())
	}

	// # Application API
	r.Route(cfg.APIPrefix, func(api chi.Router) {
		api.Route("/health", h.Health.RegisterRoutes)

		api.Route("/user", func(router chi.Router) {
			h.Auth.RegisterRoutes(router)
			router.Group(func(private chi.Router) {
				private.Use(middleware.RequireAuth)
				h.User.RegisterRoutes(private)
				h.Permission.RegisterRoutes(private)
			})
		})

		api.Route("/file", func(router chi.Router) {
			h.File.RegisterPublicRoutes(router)
			router.Group(func(private chi.Router) {
				private.Use(middleware.RequireAuth)
				h.File.RegisterRoutes(private)
			})
		})

		api.Group(func(private chi.Router) {
			private.Use(middleware.RequireAuth)
			private.Route("/menu", h.Menu.RegisterRoutes)
			private.Route("/roles", h.Role.RegisterRoutes)
			private.Route("/department", h.Department.RegisterRoutes)
			private.Route("/project", h.Project.RegisterRoutes)
			private.Route("/loginRecord", h.LoginRecord.RegisterRoutes)
		})
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}

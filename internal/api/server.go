// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ravenstrike/rsf-api/internal/content/article"
	"github.com/ravenstrike/rsf-api/internal/content/event"
	"github.com/ravenstrike/rsf-api/internal/content/gallery"
	"github.com/ravenstrike/rsf-api/internal/content/team"
	"github.com/ravenstrike/rsf-api/internal/moderation"
	"github.com/ravenstrike/rsf-api/internal/platform/config"
	"github.com/ravenstrike/rsf-api/internal/platform/constants"
	"github.com/ravenstrike/rsf-api/internal/platform/middleware"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
	"github.com/ravenstrike/rsf-api/internal/settings"
	"github.com/ravenstrike/rsf-api/internal/users/auth"
	"github.com/ravenstrike/rsf-api/internal/users/profile"
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
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles registration, login, and session management.
	Auth *auth.Handler

	// Profile handles the member's own profile plus the admin member list.
	Profile *profile.Handler

	// Article handles the public news feed and its editorial surface.
	Article *article.Handler

	// Event handles the games calendar.
	Event *event.Handler

	// Gallery handles media items and presigned uploads.
	Gallery *gallery.Handler

	// Team handles the public roster.
	Team *team.Handler

	// Settings handles site branding values.
	Settings *settings.Handler

	// Moderation handles privileged ban/unban/detail-lookup operations.
	Moderation *moderation.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Metrics())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated probes for container orchestration and scraping.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		// Public surface: readable without a token.
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/articles", h.Article.Routes())
		api.Mount("/games", h.Event.Routes())
		api.Mount("/gallery", h.Gallery.Routes())
		api.Mount("/team", h.Team.Routes())
		api.Mount("/settings", h.Settings.Routes())

		// Member surface: any authenticated user.
		api.Group(func(member chi.Router) {
			member.Use(middleware.RequireAuth)
			member.Mount("/me/profile", h.Profile.Routes())
		})

		// Admin surface: each mount enforces its own minimum role; the outer
		// RequireAuth only rejects anonymous callers early.
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middleware.RequireAuth)

			admin.Mount("/articles", h.Article.AdminRoutes())
			admin.Mount("/games", h.Event.AdminRoutes())
			admin.Mount("/gallery", h.Gallery.AdminRoutes())
			admin.Mount("/team", h.Team.AdminRoutes())
			admin.Mount("/settings", h.Settings.AdminRoutes())
			admin.Mount("/members", h.Profile.AdminRoutes())

			// Moderation route guard: admin gets in the door, the service
			// re-reads roles from the store before acting. Mounted at the
			// group root so the paths read /admin/users/{id}/ban and
			// /admin/activity.
			admin.Group(func(mod chi.Router) {
				mod.Use(middleware.RequireRole(sec.RoleAdmin))
				mod.Mount("/", h.Moderation.Routes())
			})
		})
	})

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

// Copyright (c) 2026 Raven Strike Force. All rights reserved.
// Author: dev@ravenstrike.team

// Command api is the entry point for the Raven Strike Force HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Initialize the JWT token service and S3 presigner.
//  7. Wire stores, services, and HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ravenstrike/rsf-api/internal/api"
	"github.com/ravenstrike/rsf-api/internal/content/article"
	"github.com/ravenstrike/rsf-api/internal/content/event"
	"github.com/ravenstrike/rsf-api/internal/content/gallery"
	"github.com/ravenstrike/rsf-api/internal/content/team"
	"github.com/ravenstrike/rsf-api/internal/moderation"
	"github.com/ravenstrike/rsf-api/internal/platform/config"
	"github.com/ravenstrike/rsf-api/internal/platform/constants"
	"github.com/ravenstrike/rsf-api/internal/platform/migration"
	pgstore "github.com/ravenstrike/rsf-api/internal/platform/postgres"
	redisstore "github.com/ravenstrike/rsf-api/internal/platform/redis"
	"github.com/ravenstrike/rsf-api/internal/platform/sec"
	"github.com/ravenstrike/rsf-api/internal/platform/storage"
	"github.com/ravenstrike/rsf-api/internal/settings"
	"github.com/ravenstrike/rsf-api/internal/users/auth"
	"github.com/ravenstrike/rsf-api/internal/users/profile"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[RSF] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Object Storage ─────────────────────────────────────────────────
	// Optional: without a bucket the gallery serves 503 and roster avatars
	// are omitted, but everything else works.
	var presigner *storage.Presigner
	if cfg.HasObjectStorage() {
		presigner, err = storage.NewPresigner(startupCtx, storage.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		must(log, err, "initialize object storage")
		log.Info("object_storage_ready", slog.String("bucket", cfg.S3Bucket))
	} else {
		log.Warn("object_storage_not_configured")
	}

	// ── 8. Health Handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	// Users: accounts, sessions, profiles.
	accountRepository := auth.NewAccountRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	resetTokenRepository := auth.NewResetTokenRepository(rdb)
	verificationTokenRepository := auth.NewVerificationTokenRepository(rdb)
	profileRepository := profile.NewPostgresRepository(pool)
	roleChangeRepository := profile.NewRoleChangeRepository(pool)

	authService := auth.NewService(
		accountRepository, profileRepository, sessionRepository,
		resetTokenRepository, verificationTokenRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	// Moderation: dual-store suspension writes plus the activity log.
	moderationAccounts := moderation.NewPostgresAccountStore(pool)
	moderationProfiles := moderation.NewPostgresProfileStore(pool)
	activityStore := moderation.NewPostgresActivityStore(pool)
	moderationService := moderation.NewService(moderationAccounts, moderationProfiles, activityStore, log)
	moderationHandler := moderation.NewHandler(moderationService)

	// Role changes feed the same activity log as bans.
	profileService := profile.NewService(profileRepository, roleChangeRepository, moderationService)
	profileHandler := profile.NewHandler(profileService)

	// Content: news, calendar, media, roster, branding.
	articleService := article.NewService(article.NewPostgresStore(pool))
	eventService := event.NewService(event.NewPostgresStore(pool))
	teamService := team.NewService(team.NewPostgresStore(pool), signerOrNil(presigner), log)
	settingsService := settings.NewService(settings.NewPostgresStore(pool))

	var gallerySigner gallery.URLSigner
	if presigner != nil {
		gallerySigner = presigner
	}
	galleryService := gallery.NewService(gallery.NewPostgresStore(pool), gallerySigner, log)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       authHandler,
		Profile:    profileHandler,
		Article:    article.NewHandler(articleService),
		Event:      event.NewHandler(eventService),
		Gallery:    gallery.NewHandler(galleryService),
		Team:       team.NewHandler(teamService),
		Settings:   settings.NewHandler(settingsService),
		Moderation: moderationHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// signerOrNil converts a possibly-nil *storage.Presigner into the interface
// the team service accepts without wrapping a typed nil.
func signerOrNil(p *storage.Presigner) team.AvatarSigner {
	if p == nil {
		return nil
	}
	return p
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

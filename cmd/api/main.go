// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the admin HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Open the file storage backend.
//  7. Wire repositories, services and HTTP handlers.
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

	"github.com/taibuivan/elementadmin/internal/api"
	"github.com/taibuivan/elementadmin/internal/platform/config"
	"github.com/taibuivan/elementadmin/internal/platform/constants"
	"github.com/taibuivan/elementadmin/internal/platform/metrics"
	"github.com/taibuivan/elementadmin/internal/platform/migration"
	pgstore "github.com/taibuivan/elementadmin/internal/platform/postgres"
	redisstore "github.com/taibuivan/elementadmin/internal/platform/redis"
	"github.com/taibuivan/elementadmin/internal/platform/storage"
	"github.com/taibuivan/elementadmin/internal/system/auth"
	"github.com/taibuivan/elementadmin/internal/system/department"
	"github.com/taibuivan/elementadmin/internal/system/file"
	"github.com/taibuivan/elementadmin/internal/system/loginrecord"
	"github.com/taibuivan/elementadmin/internal/system/menu"
	"github.com/taibuivan/elementadmin/internal/system/permission"
	"github.com/taibuivan/elementadmin/internal/system/project"
	"github.com/taibuivan/elementadmin/internal/system/role"
	"github.com/taibuivan/elementadmin/internal/system/session"
	"github.com/taibuivan/elementadmin/internal/system/user"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("file_storage", cfg.FileStorage),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Lives as long as the process; stops background sweepers on shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

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

	// ── 6. File Storage ───────────────────────────────────────────────────
	appMetrics := metrics.New()

	bucket, err := openBucket(startupCtx, cfg)
	must(log, err, "open file storage")
	bucket = storage.Instrument(bucket, appMetrics)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	sessions := session.NewRedisStore(rdb)

	userRepository := user.NewPostgresRepository(pool)
	roleRepository := role.NewPostgresRepository(pool)
	menuRepository := menu.NewPostgresRepository(pool)
	loginRecords := loginrecord.NewPostgresRepository(pool)

	authService := auth.NewService(userRepository, sessions, loginRecords, appMetrics, log)
	resolver := permission.NewResolver(userRepository, roleRepository, menuRepository)

	health := api.NewHealthHandler(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, api.SystemInfo{
		Name:        constants.AppName,
		Version:     cfg.ServerVersion,
		Description: cfg.ServerDesc,
		BaseURL:     cfg.BaseURL,
		APIPrefix:   cfg.APIPrefix,
	}, log)

	handlers := api.Handlers{
		Health:      health,
		Metrics:     appMetrics,
		Auth:        auth.NewHandler(authService),
		User:        user.NewHandler(user.NewService(userRepository, sessions, log)),
		Permission:  permission.NewHandler(resolver),
		Menu:        menu.NewHandler(menu.NewService(menuRepository, log)),
		Role:        role.NewHandler(role.NewService(roleRepository, log)),
		Department:  department.NewHandler(department.NewService(department.NewPostgresRepository(pool), log)),
		Project:     project.NewHandler(project.NewService(project.NewPostgresRepository(pool), log)),
		File:        file.NewHandler(file.NewService(file.NewPostgresRepository(pool), bucket, log)),
		LoginRecord: loginrecord.NewHandler(loginrecord.NewService(loginRecords)),
	}

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(appCtx, cfg, log, sessions, handlers)

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

	// Login records still in flight are written before the pool closes.
	authService.Wait()

	log.Info("server stopped cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// openBucket selects the storage backend named by FILE_STORAGE.
func openBucket(ctx context.Context, cfg *config.Config) (storage.Bucket, error) {
	if cfg.FileStorage == config.StorageS3 {
		return storage.NewS3Bucket(ctx, storage.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return storage.NewLocalBucket(cfg.FilesDir)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

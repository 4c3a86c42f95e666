// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/elementadmin/internal/platform/respond"
)

// checkTimeout bounds a single dependency probe.
const checkTimeout = 3 * time.Second

// Probe statuses.
const (
	statusUp        = "up"
	statusDown      = "down"
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthDependencies holds the injectable dependency checkers.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func(context.Context) error

	// CheckCache pings the Redis client.
	CheckCache func(context.Context) error
}

// SystemInfo is the static part of /health/info.
type SystemInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	BaseURL     string `json:"base_url"`
	APIPrefix   string `json:"api_prefix"`
}

type checkResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthHandler serves the liveness, readiness and info endpoints.
type HealthHandler struct {
	dependencies HealthDependencies
	info         SystemInfo
	logger       *slog.Logger
	now          func() time.Time
}

func NewHealthHandler(deps HealthDependencies, info SystemInfo, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{dependencies: deps, info: info, logger: logger, now: time.Now}
}

// RegisterRoutes mounts /health, /readiness and /info under the health prefix.
func (handler *HealthHandler) RegisterRoutes(router chi.Router) {
	router.Get("/health", handler.health)
	router.Get("/readiness", handler.readiness)
	router.Get("/info", handler.systemInfo)
}

// Liveness handles GET /health. It never touches a dependency.
func (handler *HealthHandler) Liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

// Ready handles GET /ready for orchestrators.
func (handler *HealthHandler) Ready(writer http.ResponseWriter, request *http.Request) {
	checks, ok := handler.check(request.Context())

	status, code := "ready", http.StatusOK
	if !ok {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	respond.WithStatus(writer, code, map[string]any{"status": status, "checks": checks})
}

// health handles GET {prefix}/health/health. It answers 200 even when a
// dependency is down; the body carries the verdict.
func (handler *HealthHandler) health(writer http.ResponseWriter, request *http.Request) {
	checks, ok := handler.check(request.Context())

	status := statusHealthy
	if !ok {
		status = statusUnhealthy
	}
	respond.OK(writer, map[string]any{
		"status":    status,
		"timestamp": handler.timestamp(),
		"version":   handler.info.Version,
		"checks":    checks,
	})
}

func (handler *HealthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	_, ok := handler.check(request.Context())

	code := http.StatusOK
	if !ok {
		code = http.StatusServiceUnavailable
	}
	respond.WithStatus(writer, code, map[string]any{
		"ready":     ok,
		"timestamp": handler.timestamp(),
	})
}

func (handler *HealthHandler) systemInfo(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		"name":        handler.info.Name,
		"version":     handler.info.Version,
		"description": handler.info.Description,
		"base_url":    handler.info.BaseURL,
		"api_prefix":  handler.info.APIPrefix,
		"timestamp":   handler.timestamp(),
	})
}

// # Checks

// check probes every configured dependency concurrently and waits for all of
// them, so one slow failure never hides another.
func (handler *HealthHandler) check(parent context.Context) (map[string]checkResult, bool) {
	probes := []struct {
		name  string
		check func(context.Context) error
	}{
		{"database", handler.dependencies.CheckDatabase},
		{"redis", handler.dependencies.CheckCache},
	}

	results := make([]checkResult, len(probes))
	var group errgroup.Group

	for i, probe := range probes {
		if probe.check == nil {
			continue
		}
		group.Go(func() error {
			ctx, cancel := context.WithTimeout(parent, checkTimeout)
			defer cancel()

			results[i] = checkResult{Status: statusUp}
			if err := probe.check(ctx); err != nil {
				results[i] = checkResult{Status: statusDown, Error: err.Error()}
				handler.logger.Error("readiness_check_failed", slog.String("dependency", probe.name), slog.Any("error", err))
			}
			return nil
		})
	}
	_ = group.Wait()

	checks := make(map[string]checkResult, len(probes))
	healthy := true
	for i, probe := range probes {
		if probe.check == nil {
			continue
		}
		checks[probe.name] = results[i]
		if results[i].Status != statusUp {
			healthy = false
		}
	}
	return checks, healthy
}

func (handler *HealthHandler) timestamp() string {
	return handler.now().Format(time.RFC3339)
}

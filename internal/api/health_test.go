// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/elementadmin/internal/api"
)

type envelope struct {
	Code    int            `json:"code"`
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

func serve(t *testing.T, handler *api.HealthHandler, path string) (int, envelope) {
	t.Helper()

	router := chi.NewRouter()
	router.Get("/health", handler.Liveness)
	router.Get("/ready", handler.Ready)
	router.Route("/api/health", handler.RegisterRoutes)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	var body envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func newHealth(database, cache error) *api.HealthHandler {
	return api.NewHealthHandler(api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return database },
		CheckCache:    func(context.Context) error { return cache },
	}, api.SystemInfo{
		Name:        "fast-element-admin",
		Version:     "2.0",
		Description: "admin",
		BaseURL:     "http://127.0.0.1:8100",
		APIPrefix:   "/api",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHealth_AllUp(t *testing.T) {
	handler := newHealth(nil, nil)

	code, body := serve(t, handler, "/api/health/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body.Data["status"])
	assert.Equal(t, "2.0", body.Data["version"])
	assert.NotEmpty(t, body.Data["timestamp"])

	checks := body.Data["checks"].(map[string]any)
	assert.Equal(t, map[string]any{"status": "up"}, checks["database"])
	assert.Equal(t, map[string]any{"status": "up"}, checks["redis"])

	code, body = serve(t, handler, "/api/health/readiness")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body.Data["ready"])
}

/*
TestHealth_Down reports each failing dependency and flips readiness to 503,
while the health endpoint still answers 200.
*/
func TestHealth_Down(t *testing.T) {
	handler := newHealth(nil, errors.New("connection refused"))

	// 1. Health
	code, body := serve(t, handler, "/api/health/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "unhealthy", body.Data["status"])

	checks := body.Data["checks"].(map[string]any)
	assert.Equal(t, map[string]any{"status": "up"}, checks["database"])
	assert.Equal(t, map[string]any{"status": "down", "error": "connection refused"}, checks["redis"])

	// 2. Readiness
	code, body = serve(t, handler, "/api/health/readiness")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, body.Success)
	assert.Equal(t, false, body.Data["ready"])

	// 3. Root probes
	code, _ = serve(t, handler, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	code, _ = serve(t, handler, "/health")
	assert.Equal(t, http.StatusOK, code)
}

func TestHealth_Info(t *testing.T) {
	code, body := serve(t, newHealth(nil, nil), "/api/health/info")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "fast-element-admin", body.Data["name"])
	assert.Equal(t, "http://127.0.0.1:8100", body.Data["base_url"])
	assert.Equal(t, "/api", body.Data["api_prefix"])
	assert.Contains(t, body.Data, "timestamp")
}

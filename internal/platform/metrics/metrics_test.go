// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/elementadmin/internal/platform/metrics"
)

/*
TestMiddleware_RoutePattern verifies that route labels use the chi pattern.
*/
func TestMiddleware_RoutePattern(t *testing.T) {
	m := metrics.New()

	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Get("/file/download/{id}", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	})

	for _, id := range []string{"A1", "B2"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/file/download/"+id, nil))
	}

	counter := m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/file/download/{id}", "204")
	assert.Equal(t, float64(2), testutil.ToFloat64(counter))
}

/*
TestObservers_NilSafe checks the helper counters and their nil receivers.
*/
func TestObservers_NilSafe(t *testing.T) {
	var disabled *metrics.Metrics
	assert.NotPanics(t, func() {
		disabled.ObserveLogin("ok")
		disabled.ObserveAuditFailure("login")
		disabled.ObserveStorage("put", "local", nil)
	})

	m := metrics.New()
	m.ObserveLogin("ok")
	m.ObserveStorage("put", "s3", errors.New("denied"))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.LoginsTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.StorageOperationsTotal.WithLabelValues("put", "s3", "error")))
}

/*
TestHandler_Exposition verifies the /metrics handler is served.
*/
func TestHandler_Exposition(t *testing.T) {
	m := metrics.New()
	m.ObserveLogin("ok")

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "element_admin_logins_total")
}

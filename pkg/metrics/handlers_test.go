// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring/prometheus"
)

func TestMetrics(t *testing.T) {
	logger := logging.NewNoopLogger()

	monitor := prometheus.NewMonitor("tenant-orchestrator", logger)
	if err := monitor.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/tenants", "status": "OK"}, 0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mux := chi.NewMux()
	NewAPI(logger).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/metrics", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), "http_response_time_seconds") {
		t.Errorf("expected response time histogram in the exposition, got %s", w.Body.String())
	}
}

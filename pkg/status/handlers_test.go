// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/internal/version"
)

type pinger func(context.Context) error

func (p pinger) Ping(ctx context.Context) error {
	return p(ctx)
}

func newTestRouter(deps map[string]PingerInterface) *chi.Mux {
	logger := logging.NewNoopLogger()

	mux := chi.NewMux()
	NewAPI(deps, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

	return mux
}

func TestAlive(t *testing.T) {
	mux := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var s Status
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Status != okValue || s.BuildInfo == nil || s.BuildInfo.Version != version.Version {
		t.Errorf("unexpected status %+v", s)
	}
}

func TestReady(t *testing.T) {
	healthy := pinger(func(context.Context) error { return nil })
	down := pinger(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		deps       map[string]PingerInterface
		wantStatus int
		wantBody   Readiness
	}{
		{
			name:       "all dependencies reachable",
			deps:       map[string]PingerInterface{"database": healthy, "routing": healthy},
			wantStatus: http.StatusOK,
			wantBody:   Readiness{Status: okValue, Dependencies: map[string]string{"database": okValue, "routing": okValue}},
		},
		{
			name:       "routing store down",
			deps:       map[string]PingerInterface{"database": healthy, "routing": down},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   Readiness{Status: degradedValue, Dependencies: map[string]string{"database": okValue, "routing": "connection refused"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newTestRouter(tt.deps)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/ready", nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			var got Readiness
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.Status != tt.wantBody.Status {
				t.Errorf("expected %s, got %s", tt.wantBody.Status, got.Status)
			}
			for name, expected := range tt.wantBody.Dependencies {
				if got.Dependencies[name] != expected {
					t.Errorf("dependency %s: expected %q, got %q", name, expected, got.Dependencies[name])
				}
			}
		})
	}
}

func TestVersion(t *testing.T) {
	mux := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/version", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	var b BuildInfo
	if err := json.NewDecoder(w.Body).Decode(&b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Version != version.Version {
		t.Errorf("expected version %s, got %s", version.Version, b.Version)
	}
}

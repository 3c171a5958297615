// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-orchestrator/internal/http/types"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/internal/version"
)

const (
	okValue       = "ok"
	degradedValue = "degraded"

	pingTimeout = 3 * time.Second
)

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	types.WriteJSON(w, http.StatusOK, Status{Status: okValue, BuildInfo: buildInfo()})
}

// ready pings every dependency and answers 503 when one of them is unreachable.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	names := make([]string, 0, len(a.dependencies))
	for name := range a.dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	code := http.StatusOK
	out := Readiness{Status: okValue, Dependencies: make(map[string]string, len(names))}

	for _, name := range names {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := a.dependencies[name].Ping(pctx)
		cancel()

		available := 1.0
		out.Dependencies[name] = okValue
		if err != nil {
			a.logger.Warnf("dependency %s unavailable: %v", name, err)
			available = 0
			out.Dependencies[name] = err.Error()
			out.Status = degradedValue
			code = http.StatusServiceUnavailable
		}

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available); err != nil {
			a.logger.Debugf("error setting dependency availability metric: %v", err)
		}
	}

	types.WriteJSON(w, code, out)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.version")
	defer span.End()

	types.WriteJSON(w, http.StatusOK, buildInfo())
}

func buildInfo() *BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return &BuildInfo{Version: version.Version}
	}

	b := &BuildInfo{Version: version.Version, Name: info.Main.Path}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			b.CommitHash = s.Value
		}
	}

	return b
}

// NewAPI builds the status endpoints; dependencies are pinged by the readiness probe.
func NewAPI(dependencies map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.dependencies = dependencies

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

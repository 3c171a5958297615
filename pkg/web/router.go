// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/tenant-orchestrator/internal/identity"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/pkg/metrics"
	"github.com/canonical/tenant-orchestrator/pkg/status"
)

// APIInterface is a group of endpoints mounted on the router.
type APIInterface interface {
	RegisterEndpoints(*chi.Mux)
}

type Config struct {
	CORSAllowedOrigins []string
	// Dependencies are pinged by the readiness probe.
	Dependencies map[string]status.PingerInterface
}

func NewRouter(
	cfg Config,
	apis []APIInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(cfg.Dependencies, tracer, monitor, logger).RegisterEndpoints(router)

	for _, api := range apis {
		api.RegisterEndpoints(router)
	}

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

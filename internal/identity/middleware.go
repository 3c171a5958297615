// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package identity reads the caller identity set by the authenticating proxy
// in front of the Command API. It does not authenticate requests itself.
package identity

import (
	"context"
	"net/http"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

const (
	// HeaderName is the header used to pass the authenticated identity ID
	HeaderName = "X-Kratos-Authenticated-Identity-Id"

	anonymous = "anonymous"
)

type contextKey struct{}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := r.Header.Get(HeaderName)
		if userID == "" {
			userID = anonymous
		}

		next.ServeHTTP(w, r.WithContext(WithActor(ctx, userID)))
	})
}

// WithActor stores the identity performing the request.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, contextKey{}, actor)
}

// Actor returns the identity performing the request, anonymous when unknown.
func Actor(ctx context.Context) string {
	if actor, ok := ctx.Value(contextKey{}).(string); ok && actor != "" {
		return actor
	}
	return anonymous
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

const (
	SignatureHeaderName = "X-Webhook-Signature"
	TimestampHeaderName = "X-Webhook-Timestamp"

	maxBodyBytes = 1 << 20
)

type Middleware struct {
	verifier SignatureVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate rejects webhooks whose signature does not match their body.
// The body is restored for the next handler.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
		defer span.End()

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			m.unauthorizedResponse(w, "unreadable body")
			return
		}

		var timestamp time.Time
		if raw := r.Header.Get(TimestampHeaderName); raw != "" {
			unix, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				m.unauthorizedResponse(w, "invalid timestamp")
				return
			}
			timestamp = time.Unix(unix, 0)
		}

		sender, err := m.verifier.VerifySignature(ctx, r.Header.Get(SignatureHeaderName), timestamp, body)
		if err != nil {
			m.logger.Debugf("webhook signature verification failed: %v", err)
			m.logger.Security().AuthenticationFailure(r.URL.Path, err.Error())
			m.unauthorizedResponse(w, err.Error())
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r.WithContext(WithSender(ctx, sender)))
	})
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

func NewMiddleware(verifier SignatureVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

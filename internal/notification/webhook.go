// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

const (
	serviceName   = "notification"
	eventIDHeader = "X-Event-ID"
)

var _ DispatcherInterface = (*WebhookDispatcher)(nil)

// WebhookDispatcher posts every event as JSON to a single endpoint.
// Receivers deduplicate on the X-Event-ID header.
type WebhookDispatcher struct {
	http *resty.Client
	url  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *WebhookDispatcher) Dispatch(ctx context.Context, e Event) error {
	ctx, span := d.tracer.Start(ctx, "notification.WebhookDispatcher.Dispatch")
	defer span.End()

	resp, err := d.http.R().
		SetContext(ctx).
		SetHeader(eventIDHeader, e.ID).
		SetBody(e).
		Post(d.url)
	if err != nil {
		return apperrors.NewExternalServiceError(serviceName, "Dispatch", true, err)
	}

	switch {
	case resp.StatusCode() >= http.StatusInternalServerError, resp.StatusCode() == http.StatusTooManyRequests:
		return apperrors.NewExternalServiceError(serviceName, "Dispatch", true, fmt.Errorf("unexpected status %d", resp.StatusCode()))
	case resp.IsError():
		return apperrors.NewExternalServiceError(serviceName, "Dispatch", false, fmt.Errorf("unexpected status %d", resp.StatusCode()))
	}

	d.logger.Debugf("dispatched %s for tenant %s", e.Type, e.TenantID)

	return nil
}

func NewWebhookDispatcher(url string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *WebhookDispatcher {
	d := new(WebhookDispatcher)

	d.http = resty.New().
		SetHeader("Content-Type", "application/json")

	if timeout > 0 {
		d.http.SetTimeout(timeout)
	}

	d.url = url

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}

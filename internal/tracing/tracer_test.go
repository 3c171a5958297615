// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.TestNoopTracer")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}
	if span.SpanContext().IsSampled() {
		t.Error("noop spans must not be sampled")
	}
}

func TestMiddlewareFilter(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/api/v0/tenants", want: true},
		{path: "/api/v0/billing/webhook", want: true},
		{path: "/api/v0/metrics", want: false},
		{path: "/api/v0/ready", want: false},
		{path: "/api/v0/status", want: false},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, tt.path, nil)
		if got := traced(r); got != tt.want {
			t.Errorf("traced(%s) = %v, want %v", tt.path, got, tt.want)
		}
	}

	r := httptest.NewRequest(http.MethodPost, "/api/v0/tenants", nil)
	if name := spanName("server", r); name != "POST /api/v0/tenants" {
		t.Errorf("unexpected span name %q", name)
	}
}

func TestConfigClampsSampleRatio(t *testing.T) {
	if c := NewConfig(true, "", "", 4, nil); c.SampleRatio != 1 {
		t.Errorf("expected ratio clamped to 1, got %v", c.SampleRatio)
	}
	if c := NewConfig(true, "", "", -1, nil); c.SampleRatio != 0 {
		t.Errorf("expected ratio clamped to 0, got %v", c.SampleRatio)
	}
}

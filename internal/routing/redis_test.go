// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

func setupRegistrar(t *testing.T) (*RedisRegistrar, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := logging.NewNoopLogger()
	r := NewRedisRegistrar(
		client,
		Config{BaseDomain: "example.com", Entrypoint: "websecure", CertResolver: "letsencrypt"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)

	return r, mr
}

func TestRedisRegistrar_PublishRoute(t *testing.T) {
	r, mr := setupRegistrar(t)
	ctx := context.Background()

	if err := r.PublishRoute(ctx, "acme", "http://tenant-acme:8069"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := map[string]string{
		"traefik/http/routers/tenant-acme/rule":                        "Host(`acme.example.com`)",
		"traefik/http/routers/tenant-acme/service":                     "tenant-acme",
		"traefik/http/routers/tenant-acme/entrypoints/0":               "websecure",
		"traefik/http/routers/tenant-acme/tls/certresolver":            "letsencrypt",
		"traefik/http/services/tenant-acme/loadbalancer/servers/0/url": "http://tenant-acme:8069",
	}

	for k, v := range expected {
		got, err := mr.Get(k)
		if err != nil {
			t.Errorf("missing key %s: %v", k, err)
			continue
		}
		if got != v {
			t.Errorf("key %s: expected %q, got %q", k, v, got)
		}
	}

	exists, err := r.RouteExists(ctx, "acme")
	if err != nil || !exists {
		t.Fatalf("expected route to exist, got %v %v", exists, err)
	}
}

func TestRedisRegistrar_RetractRoute(t *testing.T) {
	r, mr := setupRegistrar(t)
	ctx := context.Background()

	if err := r.RetractRoute(ctx, "acme"); err != nil {
		t.Fatalf("retracting a missing route should succeed: %v", err)
	}

	if err := r.PublishRoute(ctx, "acme", "http://tenant-acme:8069"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.PublishRoute(ctx, "globex", "http://tenant-globex:8069"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.RetractRoute(ctx, "acme"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exists, _ := r.RouteExists(ctx, "acme")
	if exists {
		t.Error("expected acme route to be gone")
	}

	exists, _ = r.RouteExists(ctx, "globex")
	if !exists {
		t.Error("expected globex route to be untouched")
	}

	if n := len(mr.Keys()); n != 5 {
		t.Errorf("expected only the globex keys to remain, got %d keys", n)
	}
}

func TestRedisRegistrar_PartialRouteIsNotPublished(t *testing.T) {
	r, mr := setupRegistrar(t)

	_ = mr.Set("traefik/http/routers/tenant-acme/rule", "Host(`acme.example.com`)")

	exists, err := r.RouteExists(context.Background(), "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Error("expected a route without a backend to be reported missing")
	}
}

func TestRedisRegistrar_Unavailable(t *testing.T) {
	r, mr := setupRegistrar(t)
	mr.Close()

	if err := r.PublishRoute(context.Background(), "acme", "http://tenant-acme:8069"); err == nil {
		t.Fatal("expected an error when the store is down")
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

type Config struct {
	RootKey      string
	BaseDomain   string
	Entrypoint   string
	CertResolver string
}

var _ RegistrarInterface = (*RedisRegistrar)(nil)

// RedisRegistrar publishes routes in the key layout read by the Traefik Redis provider.
// Every route is a router and a service sharing the same name.
type RedisRegistrar struct {
	client *redis.Client
	cfg    Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *RedisRegistrar) routeName(subdomain string) string {
	return "tenant-" + subdomain
}

// Host is the public host name of a subdomain.
func (r *RedisRegistrar) Host(subdomain string) string {
	return fmt.Sprintf("%s.%s", subdomain, strings.TrimPrefix(r.cfg.BaseDomain, "."))
}

func (r *RedisRegistrar) routerKey(name, field string) string {
	return fmt.Sprintf("%s/http/routers/%s/%s", r.cfg.RootKey, name, field)
}

func (r *RedisRegistrar) serviceKey(name string) string {
	return fmt.Sprintf("%s/http/services/%s/loadbalancer/servers/0/url", r.cfg.RootKey, name)
}

func (r *RedisRegistrar) entries(subdomain, backend string) map[string]string {
	name := r.routeName(subdomain)

	entries := map[string]string{
		r.routerKey(name, "rule"):    fmt.Sprintf("Host(`%s`)", r.Host(subdomain)),
		r.routerKey(name, "service"): name,
		r.serviceKey(name):           backend,
	}

	if r.cfg.Entrypoint != "" {
		entries[r.routerKey(name, "entrypoints/0")] = r.cfg.Entrypoint
	}
	if r.cfg.CertResolver != "" {
		entries[r.routerKey(name, "tls/certresolver")] = r.cfg.CertResolver
	}

	return entries
}

func (r *RedisRegistrar) keys(subdomain string) []string {
	name := r.routeName(subdomain)

	return []string{
		r.routerKey(name, "rule"),
		r.routerKey(name, "service"),
		r.routerKey(name, "entrypoints/0"),
		r.routerKey(name, "tls/certresolver"),
		r.serviceKey(name),
	}
}

// PublishRoute writes every key of the route in a single MULTI/EXEC block.
func (r *RedisRegistrar) PublishRoute(ctx context.Context, subdomain, backend string) error {
	ctx, span := r.tracer.Start(ctx, "routing.RedisRegistrar.PublishRoute")
	defer span.End()

	entries := r.entries(subdomain, backend)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for k, v := range entries {
			pipe.Set(ctx, k, v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish route for %s: %w", subdomain, err)
	}

	return nil
}

func (r *RedisRegistrar) RetractRoute(ctx context.Context, subdomain string) error {
	ctx, span := r.tracer.Start(ctx, "routing.RedisRegistrar.RetractRoute")
	defer span.End()

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.keys(subdomain)...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to retract route for %s: %w", subdomain, err)
	}

	return nil
}

// RouteExists reports whether both the router rule and the backend of a subdomain are published.
func (r *RedisRegistrar) RouteExists(ctx context.Context, subdomain string) (bool, error) {
	ctx, span := r.tracer.Start(ctx, "routing.RedisRegistrar.RouteExists")
	defer span.End()

	name := r.routeName(subdomain)

	n, err := r.client.Exists(ctx, r.routerKey(name, "rule"), r.serviceKey(name)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to look up route for %s: %w", subdomain, err)
	}

	return n == 2, nil
}

// Ping checks the key value store is reachable.
func (r *RedisRegistrar) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRegistrar) Close() error {
	return r.client.Close()
}

func NewRedisRegistrar(client *redis.Client, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisRegistrar {
	r := new(RedisRegistrar)

	if cfg.RootKey == "" {
		cfg.RootKey = "traefik"
	}

	r.client = client
	r.cfg = cfg

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}

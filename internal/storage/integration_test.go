// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

//go:build integration

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/canonical/tenant-orchestrator/internal/db"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/internal/types"
	"github.com/canonical/tenant-orchestrator/migrations"
)

func setupPostgres(t *testing.T) *Storage {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("tenants"),
		postgres.WithUsername("orchestrator"),
		postgres.WithPassword("orchestrator"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate postgres: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("invalid dsn: %v", err)
	}

	sqlDB := stdlib.OpenDB(*config)
	t.Cleanup(func() { _ = sqlDB.Close() })

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, migrations.EmbedMigrations)
	if err != nil {
		t.Fatalf("failed to create goose provider: %v", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	client, err := db.NewDBClient(db.Config{DSN: dsn, MaxConns: 4, MinConns: 1, MaxConnLifetime: time.Hour, MaxConnIdleTime: time.Minute}, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("failed to create db client: %v", err)
	}
	t.Cleanup(client.Close)

	return NewStorage(client, tracer, monitor, logger)
}

func TestIntegration_TenantNameReservation(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	plan, err := s.CreatePlan(ctx, &types.Plan{
		Name:          "starter",
		MaxUsers:      5,
		HoursPerCycle: decimal.NewFromInt(720),
		CycleDays:     30,
		Price:         decimal.RequireFromString("29.00"),
		Currency:      "EUR",
	})
	if err != nil {
		t.Fatalf("failed to create plan: %v", err)
	}

	newTenant := func(requestID, subdomain string) *types.Tenant {
		return &types.Tenant{
			RequestID:    requestID,
			Subdomain:    subdomain,
			DatabaseName: "db_" + requestID,
			PlanID:       plan.ID,
			MaxUsers:     plan.MaxUsers,
		}
	}

	first, err := s.CreateTenant(ctx, newTenant("req1", "acme"))
	if err != nil {
		t.Fatalf("failed to create tenant: %v", err)
	}

	if _, err := s.CreateTenant(ctx, newTenant("req2", "acme")); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected a live subdomain to be reserved, got %v", err)
	}

	if _, err := s.CreateTenant(ctx, newTenant("req1", "other")); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected request ids to be unique, got %v", err)
	}

	if _, err := s.TransitionTenant(ctx, first.ID, types.StatusPending, types.StatusCreating, TenantChanges{}); err != nil {
		t.Fatalf("failed to start provisioning: %v", err)
	}

	reason := "capacity unavailable"
	if _, err := s.TransitionTenant(ctx, first.ID, types.StatusCreating, types.StatusFailed, TenantChanges{
		FailureReason:  &reason,
		CompletedSteps: []types.Step{types.StepCapacity},
	}); err != nil {
		t.Fatalf("failed to mark tenant failed: %v", err)
	}

	if _, err := s.TransitionTenant(ctx, first.ID, types.StatusPending, types.StatusCreating, TenantChanges{}); !errors.Is(err, ErrStatusMismatch) {
		t.Fatalf("expected a stale transition to be rejected, got %v", err)
	}

	second, err := s.CreateTenant(ctx, newTenant("req3", "acme"))
	if err != nil {
		t.Fatalf("expected a failed tenant to release its subdomain, got %v", err)
	}

	if second.Status != types.StatusPending {
		t.Errorf("expected a new tenant to start pending, got %s", second.Status)
	}
}

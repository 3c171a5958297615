// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"time"

	"github.com/canonical/tenant-orchestrator/internal/compute"
	"github.com/canonical/tenant-orchestrator/internal/locking"
	"github.com/canonical/tenant-orchestrator/internal/notification"
	"github.com/canonical/tenant-orchestrator/internal/storage"
	"github.com/canonical/tenant-orchestrator/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, req CreateTenantRequest) (*types.Tenant, error)
	RetryTenant(ctx context.Context, id string) (*types.Tenant, error)
	SuspendTenant(ctx context.Context, id string, cause types.SuspensionCause, reason string) (*types.Tenant, error)
	ResumeTenant(ctx context.Context, id string) (*types.Tenant, error)
	DeleteTenant(ctx context.Context, id string) (*types.Tenant, error)
	CancelProvisioning(ctx context.Context, id string) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, filter ListFilter) ([]*types.Tenant, error)
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByRequestID(ctx context.Context, requestID string) (*types.Tenant, error)
	ListTenants(ctx context.Context, filter storage.TenantFilter) ([]*types.Tenant, error)
	TransitionTenant(ctx context.Context, id string, from, to types.TenantStatus, changes storage.TenantChanges) (*types.Tenant, error)
	UpdateTenantSteps(ctx context.Context, id string, status types.TenantStatus, steps []types.Step) error
	SetRepairState(ctx context.Context, id string, attempts int, alertedAt *time.Time) error
	GetPlanByID(ctx context.Context, id string) (*types.Plan, error)
	CreateBillingCycle(ctx context.Context, c *types.BillingCycle) (*types.BillingCycle, error)
	GetActiveCycle(ctx context.Context, tenantID string, forUpdate bool) (*types.BillingCycle, error)
}

type RuntimeInterface interface {
	EnsureCapacity(ctx context.Context, w compute.Workload) error
	HealthCheck(ctx context.Context, w compute.Workload) (compute.HealthStatus, error)
	Teardown(ctx context.Context, w compute.Workload) error
	Backend(w compute.Workload) string
}

type InstanceInterface interface {
	CreateDatabase(ctx context.Context, name string, modules []string) error
	DropDatabase(ctx context.Context, name string) error
	SetUserLimit(ctx context.Context, name string, maxUsers int) error
	DatabaseExists(ctx context.Context, name string) (bool, error)
}

type RoutingInterface interface {
	PublishRoute(ctx context.Context, subdomain, backend string) error
	RetractRoute(ctx context.Context, subdomain string) error
	RouteExists(ctx context.Context, subdomain string) (bool, error)
}

type DispatcherInterface interface {
	Dispatch(ctx context.Context, e notification.Event) error
}

type LockerInterface interface {
	Lock(ctx context.Context, key string) (locking.Unlock, error)
	TryLock(ctx context.Context, key string) (locking.Unlock, bool, error)
}

type CallerInterface interface {
	Call(ctx context.Context, service, operation string, fn func(context.Context) error) error
}

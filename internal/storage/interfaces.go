// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/canonical/tenant-orchestrator/internal/types"
)

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetTenantByRequestID(ctx context.Context, requestID string) (*types.Tenant, error)
	ListTenants(ctx context.Context, filter TenantFilter) ([]*types.Tenant, error)
	TransitionTenant(ctx context.Context, id string, from, to types.TenantStatus, changes TenantChanges) (*types.Tenant, error)
	UpdateTenantSteps(ctx context.Context, id string, status types.TenantStatus, steps []types.Step) error
	SetRepairState(ctx context.Context, id string, attempts int, alertedAt *time.Time) error

	CreatePlan(ctx context.Context, p *types.Plan) (*types.Plan, error)
	GetPlanByID(ctx context.Context, id string) (*types.Plan, error)
	ListPlans(ctx context.Context) ([]*types.Plan, error)

	CreateBillingCycle(ctx context.Context, c *types.BillingCycle) (*types.BillingCycle, error)
	GetActiveCycle(ctx context.Context, tenantID string, forUpdate bool) (*types.BillingCycle, error)
	ListCycles(ctx context.Context, tenantID string) ([]*types.BillingCycle, error)
	IncrementCycleUsage(ctx context.Context, cycleID string, delta decimal.Decimal) (*types.BillingCycle, error)
	SetCycleUsage(ctx context.Context, cycleID string, hours decimal.Decimal) error
	CloseCycle(ctx context.Context, cycleID string, status types.CycleStatus, periodEnd *time.Time) error
	StartCycleGrace(ctx context.Context, cycleID string, at time.Time) error
	SumCycleUsage(ctx context.Context, cycleID string) (decimal.Decimal, error)
	ListTenantIDsWithActiveCycle(ctx context.Context) ([]string, error)
	AppendUsageSample(ctx context.Context, u *types.UsageSample) (*types.UsageSample, error)

	CreatePayment(ctx context.Context, p *types.PaymentTransaction) (*types.PaymentTransaction, error)
	GetPaymentByExternalID(ctx context.Context, externalID string) (*types.PaymentTransaction, error)
	UpdatePaymentStatus(ctx context.Context, id string, status types.PaymentStatus, reason *string) error
}

// TenantFilter narrows ListTenants. Zero values mean no filtering and default paging.
type TenantFilter struct {
	Statuses []types.TenantStatus
	// UpdatedBefore selects tenants whose last change is older than the given instant.
	UpdatedBefore *time.Time
	Page          int64
	Size          int64
}

// TenantChanges are applied together with a status transition.
type TenantChanges struct {
	FailureReason      *string
	ClearFailureReason bool
	SuspensionCause    *types.SuspensionCause
	// CompletedSteps replaces the recorded steps when not nil.
	CompletedSteps []types.Step
	ResetRepairs   bool
}

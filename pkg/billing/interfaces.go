// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/canonical/tenant-orchestrator/internal/locking"
	"github.com/canonical/tenant-orchestrator/internal/notification"
	"github.com/canonical/tenant-orchestrator/internal/types"
)

type EngineInterface interface {
	RecordUsage(ctx context.Context, tenantID string, deltaHours decimal.Decimal) (*types.BillingCycle, error)
	EvaluateCycle(ctx context.Context, tenantID string) (Verdict, error)
	EvaluateAll(ctx context.Context) error
	ApplyPayment(ctx context.Context, p Payment) (*types.PaymentTransaction, error)
	GetPayment(ctx context.Context, externalID string) (*types.PaymentTransaction, error)
	ListCycles(ctx context.Context, tenantID string) ([]*types.BillingCycle, error)
	CreatePlan(ctx context.Context, req CreatePlanRequest) (*types.Plan, error)
	GetPlan(ctx context.Context, id string) (*types.Plan, error)
	ListPlans(ctx context.Context) ([]*types.Plan, error)
}

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)

	CreatePlan(ctx context.Context, p *types.Plan) (*types.Plan, error)
	GetPlanByID(ctx context.Context, id string) (*types.Plan, error)
	ListPlans(ctx context.Context) ([]*types.Plan, error)

	CreateBillingCycle(ctx context.Context, c *types.BillingCycle) (*types.BillingCycle, error)
	GetActiveCycle(ctx context.Context, tenantID string, forUpdate bool) (*types.BillingCycle, error)
	ListCycles(ctx context.Context, tenantID string) ([]*types.BillingCycle, error)
	IncrementCycleUsage(ctx context.Context, cycleID string, delta decimal.Decimal) (*types.BillingCycle, error)
	CloseCycle(ctx context.Context, cycleID string, status types.CycleStatus, periodEnd *time.Time) error
	StartCycleGrace(ctx context.Context, cycleID string, at time.Time) error
	ListTenantIDsWithActiveCycle(ctx context.Context) ([]string, error)
	AppendUsageSample(ctx context.Context, u *types.UsageSample) (*types.UsageSample, error)
	SumCycleUsage(ctx context.Context, cycleID string) (decimal.Decimal, error)
	SetCycleUsage(ctx context.Context, cycleID string, hours decimal.Decimal) error

	CreatePayment(ctx context.Context, p *types.PaymentTransaction) (*types.PaymentTransaction, error)
	GetPaymentByExternalID(ctx context.Context, externalID string) (*types.PaymentTransaction, error)
	UpdatePaymentStatus(ctx context.Context, id string, status types.PaymentStatus, reason *string) error
}

// OrchestratorInterface is the part of the provisioning orchestrator billing drives.
type OrchestratorInterface interface {
	SuspendTenant(ctx context.Context, id string, cause types.SuspensionCause, reason string) (*types.Tenant, error)
	ResumeTenant(ctx context.Context, id string) (*types.Tenant, error)
}

type DispatcherInterface interface {
	Dispatch(ctx context.Context, e notification.Event) error
}

type LockerInterface interface {
	Lock(ctx context.Context, key string) (locking.Unlock, error)
}

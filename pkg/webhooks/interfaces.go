// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/tenant-orchestrator/internal/types"
	"github.com/canonical/tenant-orchestrator/pkg/billing"
	"github.com/canonical/tenant-orchestrator/pkg/tenant"
)

// TenantServiceInterface is the subset of the tenant service purchases drive.
type TenantServiceInterface interface {
	CreateTenant(ctx context.Context, req tenant.CreateTenantRequest) (*types.Tenant, error)
}

// BillingInterface is the subset of the billing engine payments drive.
type BillingInterface interface {
	ApplyPayment(ctx context.Context, p billing.Payment) (*types.PaymentTransaction, error)
}

type ServiceInterface interface {
	HandlePurchase(ctx context.Context, event PurchaseEvent) (*types.Tenant, error)
	HandlePayment(ctx context.Context, p billing.Payment) (*types.PaymentTransaction, error)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/internal/types"
	"github.com/canonical/tenant-orchestrator/pkg/billing"
	"github.com/canonical/tenant-orchestrator/pkg/tenant"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	tenants TenantServiceInterface
	billing BillingInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandlePurchase provisions the tenant bought by an order. Storefronts redeliver
// events, so the order id is used as the provisioning request id and a repeated
// event returns the tenant created the first time.
func (s *Service) HandlePurchase(ctx context.Context, event PurchaseEvent) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandlePurchase")
	defer span.End()

	if event.OrderID == "" {
		return nil, apperrors.NewValidationError("order_id", "is required")
	}

	if len(event.OrderID) > maxOrderIDLength {
		return nil, apperrors.NewValidationError("order_id", "must be at most %d characters", maxOrderIDLength)
	}

	s.logger.Debugf("handling purchase %s for subdomain %s", event.OrderID, event.Subdomain)

	t, err := s.tenants.CreateTenant(ctx, tenant.CreateTenantRequest{
		RequestID: orderRequestPrefix + event.OrderID,
		Subdomain: event.Subdomain,
		PlanID:    event.PlanID,
		Modules:   event.Modules,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("purchase %s mapped to tenant %s (%s)", event.OrderID, t.ID, t.Status)

	return t, nil
}

func (s *Service) HandlePayment(ctx context.Context, p billing.Payment) (*types.PaymentTransaction, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandlePayment")
	defer span.End()

	s.logger.Debugf("handling payment %s for tenant %s", p.ExternalTransactionID, p.TenantID)

	return s.billing.ApplyPayment(ctx, p)
}

func NewService(
	tenants TenantServiceInterface,
	billing BillingInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.tenants = tenants
	s.billing = billing

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

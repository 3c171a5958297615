// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
	"github.com/canonical/tenant-orchestrator/internal/compute"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/notification"
	"github.com/canonical/tenant-orchestrator/internal/storage"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/internal/types"
)

const reconcilePageSize = 100

// Reconciler compares every non terminal tenant with what the adapters report
// and repairs the difference. Tenants locked by a running operation are skipped
// until the next pass.
type Reconciler struct {
	service *Service

	workers           int
	maxRepairAttempts int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Run performs one reconciliation pass.
func (r *Reconciler) Run(ctx context.Context) error {
	ctx, span := r.tracer.Start(ctx, "tenant.Reconciler.Run")
	defer span.End()

	tenants, err := r.listTenants(ctx)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, t := range tenants {
		g.Go(func() error {
			r.reconcile(gctx, t)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	r.logger.Debugf("reconciled %d tenants", len(tenants))

	return ctx.Err()
}

func (r *Reconciler) listTenants(ctx context.Context) ([]*types.Tenant, error) {
	statuses := []types.TenantStatus{
		types.StatusPending,
		types.StatusCreating,
		types.StatusActive,
		types.StatusSuspended,
		types.StatusDeleting,
	}

	var all []*types.Tenant
	for page := int64(1); ; page++ {
		tenants, err := r.service.storage.ListTenants(ctx, storage.TenantFilter{
			Statuses: statuses,
			Page:     page,
			Size:     reconcilePageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list tenants: %w", err)
		}

		all = append(all, tenants...)
		if len(tenants) < reconcilePageSize {
			return all, nil
		}
	}
}

func (r *Reconciler) reconcile(ctx context.Context, listed *types.Tenant) {
	ctx, span := r.tracer.Start(ctx, "tenant.Reconciler.reconcile")
	defer span.End()

	unlock, ok, err := r.service.locker.TryLock(ctx, LockKey(listed.ID))
	if err != nil {
		r.logger.Errorf("failed to lock tenant %s: %v", listed.ID, err)
		return
	}
	if !ok {
		r.logger.Debugf("tenant %s is busy, skipping", listed.ID)
		return
	}
	defer unlock()

	t, err := r.service.getTenant(ctx, listed.ID)
	if err != nil {
		r.logger.Errorf("failed to reload tenant %s: %v", listed.ID, err)
		return
	}

	var repairErr error

	switch t.Status {
	case types.StatusPending, types.StatusCreating:
		repairErr = r.reconcileProvisioning(ctx, t)
	case types.StatusActive:
		repairErr = r.reconcileActive(ctx, t)
	case types.StatusSuspended:
		repairErr = r.reconcileSuspended(ctx, t)
	case types.StatusDeleting:
		_, repairErr = r.service.teardown(ctx, t)
	default:
		return
	}

	r.record(ctx, t, repairErr)
}

// reconcileProvisioning finishes a tenant stuck past the provisioning deadline
// when its database exists, otherwise it rolls the tenant back to FAILED.
func (r *Reconciler) reconcileProvisioning(ctx context.Context, t *types.Tenant) error {
	if time.Since(t.UpdatedAt) < r.service.cfg.ProvisioningDeadline {
		return nil
	}

	r.logger.Warnf("tenant %s stuck in %s since %s", t.ID, t.Status, t.UpdatedAt.Format(time.RFC3339))

	var (
		result *types.Tenant
		err    error
	)

	if t.HasStep(types.StepDatabase) {
		result, err = r.service.runSteps(ctx, t)
	} else {
		result, err = r.service.rollback(ctx, t, "", reasonDeadline)
	}

	if result != nil && (result.Status == types.StatusActive || result.Status == types.StatusFailed) {
		return nil
	}

	return err
}

func (r *Reconciler) reconcileActive(ctx context.Context, t *types.Tenant) error {
	caller := r.service.caller
	w := workload(t)

	exists := false
	err := caller.Call(ctx, serviceInstance, "DatabaseExists", func(ctx context.Context) error {
		var err error
		exists, err = r.service.instance.DatabaseExists(ctx, t.DatabaseName)
		return err
	})
	if err != nil {
		return err
	}
	if !exists {
		return &apperrors.ConsistencyError{TenantID: t.ID, Expected: "database " + t.DatabaseName, Actual: "no database"}
	}

	var errs []error

	status := compute.Unknown
	err = caller.Call(ctx, serviceCompute, "HealthCheck", func(ctx context.Context) error {
		var err error
		status, err = r.service.runtime.HealthCheck(ctx, w)
		return err
	})
	switch {
	case err != nil:
		errs = append(errs, err)
	case status != compute.Healthy:
		r.logger.Warnf("workload of tenant %s is %s", t.ID, status)

		if err := caller.Call(ctx, serviceCompute, "EnsureCapacity", func(ctx context.Context) error {
			return r.service.runtime.EnsureCapacity(ctx, w)
		}); err != nil {
			errs = append(errs, err)
		}
		errs = append(errs, &apperrors.ConsistencyError{TenantID: t.ID, Expected: string(compute.Healthy), Actual: string(status)})
	}

	present, err := r.routeExists(ctx, t)
	switch {
	case err != nil:
		errs = append(errs, err)
	case !present:
		r.logger.Warnf("route of tenant %s is missing, publishing it again", t.ID)

		if err := r.service.publishRoute(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (r *Reconciler) reconcileSuspended(ctx context.Context, t *types.Tenant) error {
	present, err := r.routeExists(ctx, t)
	if err != nil {
		return err
	}

	if present {
		r.logger.Warnf("route of suspended tenant %s is published, retracting it", t.ID)
		return r.service.retractRoute(ctx, t)
	}

	return nil
}

func (r *Reconciler) routeExists(ctx context.Context, t *types.Tenant) (bool, error) {
	present := false
	err := r.service.caller.Call(ctx, serviceRouting, "RouteExists", func(ctx context.Context) error {
		var err error
		present, err = r.service.routing.RouteExists(ctx, t.Subdomain)
		return err
	})
	return present, err
}

// record keeps count of consecutive failed repairs and raises a single alert
// once the count reaches the configured limit.
func (r *Reconciler) record(ctx context.Context, t *types.Tenant, repairErr error) {
	if repairErr == nil {
		if t.RepairAttempts > 0 || t.AlertedAt != nil {
			if err := r.service.storage.SetRepairState(ctx, t.ID, 0, nil); err != nil {
				r.logger.Errorf("failed to reset repair state of tenant %s: %v", t.ID, err)
			}
		}
		return
	}

	attempts := t.RepairAttempts + 1
	alertedAt := t.AlertedAt

	r.logger.Warnf("repair of tenant %s failed (attempt %d): %v", t.ID, attempts, repairErr)

	if attempts >= r.maxRepairAttempts && alertedAt == nil {
		now := time.Now().UTC()
		alertedAt = &now

		r.logger.Errorf("tenant %s needs operator attention after %d repair attempts: %v", t.ID, attempts, repairErr)
		r.service.notify(ctx, notification.EventRepairAlert, t, map[string]string{
			"status":   string(t.Status),
			"attempts": strconv.Itoa(attempts),
			"error":    repairErr.Error(),
		})
	}

	if err := r.service.storage.SetRepairState(ctx, t.ID, attempts, alertedAt); err != nil {
		r.logger.Errorf("failed to store repair state of tenant %s: %v", t.ID, err)
	}
}

func NewReconciler(service *Service, workers, maxRepairAttempts int, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Reconciler {
	r := new(Reconciler)

	r.service = service
	r.workers = max(workers, 1)
	r.maxRepairAttempts = max(maxRepairAttempts, 1)

	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}

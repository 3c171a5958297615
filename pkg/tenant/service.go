// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
	"github.com/canonical/tenant-orchestrator/internal/compute"
	"github.com/canonical/tenant-orchestrator/internal/locking"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/notification"
	"github.com/canonical/tenant-orchestrator/internal/storage"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/internal/types"
	"github.com/canonical/tenant-orchestrator/internal/validation"
)

const (
	serviceCompute  = "compute"
	serviceInstance = "instance"
	serviceRouting  = "routing"

	reasonCancelled = "provisioning cancelled by operator"
	reasonDeleted   = "tenant deleted during provisioning"
	reasonDeadline  = "provisioning deadline exceeded"
)

var _ ServiceInterface = (*Service)(nil)

// LockKey is the advisory lock serializing every operation on one tenant.
func LockKey(tenantID string) string {
	return "tenant:" + tenantID
}

type Service struct {
	storage  StorageInterface
	runtime  RuntimeInterface
	instance InstanceInterface
	routing  RoutingInterface
	notifier DispatcherInterface
	locker   LockerInterface
	caller   CallerInterface

	validator *validation.Validator
	cfg       Config

	mu       sync.Mutex
	inflight map[string]context.CancelFunc
	wg       sync.WaitGroup

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	runtime RuntimeInterface,
	instance InstanceInterface,
	routing RoutingInterface,
	notifier DispatcherInterface,
	locker LockerInterface,
	caller CallerInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		runtime:   runtime,
		instance:  instance,
		routing:   routing,
		notifier:  notifier,
		locker:    locker,
		caller:    caller,
		validator: validation.NewValidator(),
		cfg:       cfg,
		inflight:  make(map[string]context.CancelFunc),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// CreateTenant reserves the subdomain and database name of a new tenant and
// provisions it. Repeating a request id returns the tenant it created, retrying
// it first when it FAILED.
func (s *Service) CreateTenant(ctx context.Context, req CreateTenantRequest) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	if slices.Contains(s.cfg.ReservedSubdomains, req.Subdomain) {
		return nil, apperrors.NewValidationError("subdomain", "%q is reserved", req.Subdomain)
	}

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	} else {
		existing, err := s.storage.GetTenantByRequestID(ctx, req.RequestID)
		if err == nil {
			return s.replay(ctx, existing, req)
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up request %s: %w", req.RequestID, err)
		}
	}

	plan, err := s.storage.GetPlanByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NewValidationError("plan_id", "unknown plan %s", req.PlanID)
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	modules := req.Modules
	if modules == nil {
		modules = []string{}
	}

	t, err := s.storage.CreateTenant(ctx, &types.Tenant{
		RequestID:    req.RequestID,
		Subdomain:    req.Subdomain,
		DatabaseName: DatabaseName(req.Subdomain),
		PlanID:       plan.ID,
		MaxUsers:     plan.MaxUsers,
		StorageLimit: plan.StorageLimit,
		Modules:      modules,
	})
	if err != nil {
		if !errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("failed to reserve tenant: %w", err)
		}

		// a concurrent delivery of the same request may have won the insert
		if existing, getErr := s.storage.GetTenantByRequestID(ctx, req.RequestID); getErr == nil {
			return s.replay(ctx, existing, req)
		}
		return nil, apperrors.NewConflictError("subdomain", req.Subdomain, err)
	}

	s.logger.Infof("reserved subdomain %s for tenant %s", t.Subdomain, t.ID)

	unlock, err := s.lock(ctx, t.ID)
	if err != nil {
		return t, err
	}

	t, err = s.transition(ctx, t, types.StatusCreating, storage.TenantChanges{})
	if err != nil {
		unlock()
		return t, err
	}

	return s.provision(ctx, t, unlock)
}

func (s *Service) replay(ctx context.Context, existing *types.Tenant, req CreateTenantRequest) (*types.Tenant, error) {
	if existing.Subdomain != req.Subdomain || existing.PlanID != req.PlanID {
		return nil, apperrors.NewConflictError("request", req.RequestID, nil)
	}

	if existing.Status == types.StatusFailed {
		return s.RetryTenant(ctx, existing.ID)
	}

	return existing, nil
}

// RetryTenant resumes a FAILED tenant from its first incomplete step.
func (s *Service) RetryTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.RetryTenant")
	defer span.End()

	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}

	t, err := s.getTenant(ctx, id)
	if err != nil {
		unlock()
		return nil, err
	}

	switch t.Status {
	case types.StatusActive:
		unlock()
		return t, nil
	case types.StatusFailed:
	default:
		unlock()
		return t, &apperrors.ConsistencyError{TenantID: id, Expected: string(types.StatusFailed), Actual: string(t.Status)}
	}

	t, err = s.transition(ctx, t, types.StatusCreating, storage.TenantChanges{ClearFailureReason: true, ResetRepairs: true})
	if err != nil {
		unlock()
		return t, err
	}

	return s.provision(ctx, t, unlock)
}

// SuspendTenant retracts the route of an ACTIVE tenant, keeping its database and workload.
func (s *Service) SuspendTenant(ctx context.Context, id string, cause types.SuspensionCause, reason string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SuspendTenant")
	defer span.End()

	if cause == types.SuspensionNone {
		cause = types.SuspensionOperator
	}

	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	t, err := s.getTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	switch t.Status {
	case types.StatusSuspended:
		return t, nil
	case types.StatusActive:
	default:
		return t, &apperrors.ConsistencyError{TenantID: id, Expected: string(types.StatusActive), Actual: string(t.Status)}
	}

	if err := s.retractRoute(ctx, t); err != nil {
		return t, err
	}

	suspended, err := s.transition(ctx, t, types.StatusSuspended, storage.TenantChanges{
		SuspensionCause: &cause,
		CompletedSteps:  withoutStep(t.CompletedSteps, types.StepRoute),
	})
	if err != nil {
		return suspended, err
	}

	s.logger.Infof("suspended tenant %s (%s): %s", id, cause, reason)
	s.notify(ctx, notification.EventTenantSuspended, suspended, map[string]string{"cause": string(cause), "reason": reason})

	return suspended, nil
}

// ResumeTenant publishes the route of a SUSPENDED tenant again.
func (s *Service) ResumeTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ResumeTenant")
	defer span.End()

	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	t, err := s.getTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	switch t.Status {
	case types.StatusActive:
		return t, nil
	case types.StatusSuspended:
	default:
		return t, &apperrors.ConsistencyError{TenantID: id, Expected: string(types.StatusSuspended), Actual: string(t.Status)}
	}

	if err := s.publishRoute(ctx, t); err != nil {
		return t, err
	}

	none := types.SuspensionNone
	resumed, err := s.transition(ctx, t, types.StatusActive, storage.TenantChanges{
		SuspensionCause: &none,
		CompletedSteps:  withStep(t.CompletedSteps, types.StepRoute),
	})
	if err != nil {
		return resumed, err
	}

	s.logger.Infof("resumed tenant %s", id)
	s.notify(ctx, notification.EventTenantResumed, resumed, nil)

	return resumed, nil
}

// DeleteTenant tears a tenant down from any status. A failed teardown leaves
// the tenant DELETING, calling it again continues where it stopped.
func (s *Service) DeleteTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.DeleteTenant")
	defer span.End()

	s.cancelInflight(id)

	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	t, err := s.getTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Status == types.StatusPending || t.Status == types.StatusCreating {
		t, err = s.rollback(ctx, t, "", reasonDeleted)
		if err != nil {
			return t, err
		}
	}

	switch t.Status {
	case types.StatusDeleted:
		return t, nil
	case types.StatusActive, types.StatusSuspended, types.StatusFailed:
		t, err = s.transition(ctx, t, types.StatusDeleting, storage.TenantChanges{})
		if err != nil {
			return t, err
		}
	}

	return s.teardown(ctx, t)
}

// CancelProvisioning stops a PENDING or CREATING tenant. Before its database is
// acknowledged the tenant is rolled back to FAILED, afterwards it is deleted.
func (s *Service) CancelProvisioning(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CancelProvisioning")
	defer span.End()

	t, err := s.getTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Status != types.StatusPending && t.Status != types.StatusCreating {
		return t, &apperrors.ConsistencyError{TenantID: id, Expected: "PENDING or CREATING", Actual: string(t.Status)}
	}

	if t.HasStep(types.StepDatabase) {
		return s.DeleteTenant(ctx, id)
	}

	s.cancelInflight(id)

	unlock, err := s.lock(ctx, id)
	if err != nil {
		return nil, err
	}

	t, err = s.getTenant(ctx, id)
	if err != nil {
		unlock()
		return nil, err
	}

	switch {
	case t.Status == types.StatusActive, t.HasStep(types.StepDatabase):
		unlock()
		return s.DeleteTenant(ctx, id)
	case t.Status == types.StatusPending, t.Status == types.StatusCreating:
		defer unlock()
		return s.rollback(ctx, t, "", reasonCancelled)
	default:
		unlock()
		return t, nil
	}
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	return s.getTenant(ctx, id)
}

func (s *Service) ListTenants(ctx context.Context, filter ListFilter) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	for _, st := range filter.Statuses {
		if !st.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown status %q", st)
		}
	}

	tenants, err := s.storage.ListTenants(ctx, storage.TenantFilter{
		Statuses: filter.Statuses,
		Page:     filter.Page,
		Size:     filter.Size,
	})
	if err != nil {
		return nil, err
	}

	return tenants, nil
}

// Wait blocks until background provisioning runs have returned.
func (s *Service) Wait() {
	s.wg.Wait()
}

// provision runs the provisioning steps of a CREATING tenant. It owns unlock
// and releases the tenant lock once the run is over.
func (s *Service) provision(ctx context.Context, t *types.Tenant, unlock locking.Unlock) (*types.Tenant, error) {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.track(t.ID, cancel)

	run := func() (*types.Tenant, error) {
		defer unlock()
		defer s.untrack(t.ID)
		defer cancel()

		return s.runSteps(runCtx, t)
	}

	if !s.cfg.Async {
		return run()
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if _, err := run(); err != nil {
			s.logger.Errorf("provisioning of tenant %s failed: %v", t.ID, err)
		}
	}()

	return t, nil
}

// runSteps performs every step the tenant has not completed yet, then activates it.
// On failure the reached steps are compensated and the tenant ends FAILED.
func (s *Service) runSteps(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.runSteps")
	defer span.End()

	t = clone(t)
	steps := slices.Clone(t.CompletedSteps)

	for _, step := range types.ProvisioningSteps {
		if slices.Contains(steps, step) {
			continue
		}

		if err := s.runStep(ctx, t, step); err != nil {
			reason := err.Error()
			if ctx.Err() != nil {
				reason = reasonCancelled
			}

			s.logger.Errorf("step %s of tenant %s failed: %v", step, t.ID, err)

			failed, rbErr := s.rollback(ctx, t, step, reason)
			if rbErr != nil {
				return failed, errors.Join(err, rbErr)
			}
			return failed, err
		}

		steps = append(steps, step)
		if err := s.storage.UpdateTenantSteps(ctx, t.ID, types.StatusCreating, steps); err != nil {
			return t, fmt.Errorf("failed to record step %s: %w", step, err)
		}
		t.CompletedSteps = slices.Clone(steps)

		s.logger.Debugf("tenant %s completed step %s", t.ID, step)
	}

	return s.activate(ctx, t)
}

func (s *Service) runStep(ctx context.Context, t *types.Tenant, step types.Step) error {
	w := workload(t)

	switch step {
	case types.StepCapacity:
		return s.caller.Call(ctx, serviceCompute, "EnsureCapacity", func(ctx context.Context) error {
			return s.runtime.EnsureCapacity(ctx, w)
		})
	case types.StepDatabase:
		return s.caller.Call(ctx, serviceInstance, "CreateDatabase", func(ctx context.Context) error {
			return s.instance.CreateDatabase(ctx, t.DatabaseName, t.Modules)
		})
	case types.StepUserLimit:
		return s.caller.Call(ctx, serviceInstance, "SetUserLimit", func(ctx context.Context) error {
			return s.instance.SetUserLimit(ctx, t.DatabaseName, t.MaxUsers)
		})
	case types.StepHealth:
		return s.waitHealthy(ctx, w)
	case types.StepRoute:
		return s.publishRoute(ctx, t)
	default:
		return fmt.Errorf("unknown provisioning step %q", step)
	}
}

// waitHealthy polls the workload until it reports healthy. Failed checks count as unknown.
func (s *Service) waitHealthy(ctx context.Context, w compute.Workload) error {
	attempts := max(s.cfg.HealthCheckAttempts, 1)
	status := compute.Unknown

	for i := uint(0); i < attempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return apperrors.NewExternalServiceError(serviceCompute, "HealthCheck", false, ctx.Err())
			case <-time.After(s.cfg.HealthCheckInterval):
			}
		}

		err := s.caller.Call(ctx, serviceCompute, "HealthCheck", func(ctx context.Context) error {
			st, err := s.runtime.HealthCheck(ctx, w)
			if err != nil {
				return err
			}
			status = st
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			s.logger.Debugf("health check of %s failed: %v", w.Name(), err)
			status = compute.Unknown
			continue
		}

		if status == compute.Healthy {
			return nil
		}
	}

	return apperrors.NewExternalServiceError(
		serviceCompute,
		"HealthCheck",
		false,
		fmt.Errorf("workload %s still %s after %d checks", w.Name(), status, attempts),
	)
}

// activate moves a fully provisioned tenant to ACTIVE and opens its first billing cycle.
func (s *Service) activate(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	plan, err := s.storage.GetPlanByID(ctx, t.PlanID)
	if err != nil {
		return t, fmt.Errorf("failed to get plan %s: %w", t.PlanID, err)
	}

	var active *types.Tenant
	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		var err error

		active, err = s.transition(ctx, t, types.StatusActive, storage.TenantChanges{
			ClearFailureReason: true,
			ResetRepairs:       true,
			CompletedSteps:     t.CompletedSteps,
		})
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		_, err = s.storage.CreateBillingCycle(ctx, &types.BillingCycle{
			TenantID:     t.ID,
			PeriodStart:  now,
			PeriodEnd:    now.Add(plan.CycleLength()),
			HoursAllowed: plan.HoursPerCycle,
		})
		if err != nil {
			return fmt.Errorf("failed to open billing cycle: %w", err)
		}

		return nil
	})
	if err != nil {
		return t, err
	}

	s.logger.Infof("tenant %s is active at %s", active.ID, active.Subdomain)
	s.notify(ctx, notification.EventTenantActive, active, map[string]string{"subdomain": active.Subdomain})

	return active, nil
}

// rollback compensates the external side effects of a PENDING or CREATING tenant
// and marks it FAILED. Steps up to failedStep are compensated, every step when
// failedStep is empty. If compensation fails the tenant stays CREATING and
// keeps its reservation so the reconciler can try again.
func (s *Service) rollback(ctx context.Context, t *types.Tenant, failedStep types.Step, reason string) (*types.Tenant, error) {
	ctx = context.WithoutCancel(ctx)

	ctx, span := s.tracer.Start(ctx, "tenant.Service.rollback")
	defer span.End()

	if t.Status == types.StatusPending {
		var err error
		if t, err = s.transition(ctx, t, types.StatusCreating, storage.TenantChanges{}); err != nil {
			return t, err
		}
	}

	if err := s.compensate(ctx, t, reachedBy(failedStep)); err != nil {
		s.logger.Errorf("compensation of tenant %s failed: %v", t.ID, err)
		return t, err
	}

	kept := []types.Step{}
	if t.HasStep(types.StepCapacity) {
		kept = append(kept, types.StepCapacity)
	}

	failed, err := s.transition(ctx, t, types.StatusFailed, storage.TenantChanges{
		FailureReason:  &reason,
		CompletedSteps: kept,
	})
	if err != nil {
		return failed, err
	}

	s.logger.Warnf("tenant %s failed: %s", t.ID, reason)
	s.notify(ctx, notification.EventTenantFailed, failed, map[string]string{"reason": reason})

	return failed, nil
}

// compensate retracts the route and drops the database of a tenant that still
// holds its names. Both calls tolerate missing resources.
func (s *Service) compensate(ctx context.Context, t *types.Tenant, reached func(types.Step) bool) error {
	var errs []error

	if reached(types.StepRoute) {
		if err := s.retractRoute(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}

	if reached(types.StepDatabase) {
		if err := s.dropDatabase(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// teardown releases every resource recorded on a DELETING tenant, persisting
// progress after each acknowledged call, and marks it DELETED.
func (s *Service) teardown(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.teardown")
	defer span.End()

	t = clone(t)

	actions := []struct {
		steps []types.Step
		run   func(context.Context, *types.Tenant) error
	}{
		{steps: []types.Step{types.StepRoute}, run: s.retractRoute},
		{steps: []types.Step{types.StepDatabase, types.StepUserLimit, types.StepHealth}, run: s.dropDatabase},
		{steps: []types.Step{types.StepCapacity}, run: s.releaseCapacity},
	}

	steps := slices.Clone(t.CompletedSteps)

	for _, a := range actions {
		if !slices.ContainsFunc(a.steps, func(st types.Step) bool { return slices.Contains(steps, st) }) {
			continue
		}

		if err := a.run(ctx, t); err != nil {
			return t, err
		}

		for _, st := range a.steps {
			steps = withoutStep(steps, st)
		}

		if err := s.storage.UpdateTenantSteps(ctx, t.ID, types.StatusDeleting, steps); err != nil {
			return t, fmt.Errorf("failed to record teardown of tenant %s: %w", t.ID, err)
		}
		t.CompletedSteps = slices.Clone(steps)
	}

	deleted, err := s.transition(ctx, t, types.StatusDeleted, storage.TenantChanges{CompletedSteps: []types.Step{}})
	if err != nil {
		return deleted, err
	}

	s.logger.Infof("tenant %s deleted", t.ID)
	s.notify(ctx, notification.EventTenantDeleted, deleted, nil)

	return deleted, nil
}

func (s *Service) publishRoute(ctx context.Context, t *types.Tenant) error {
	backend := s.runtime.Backend(workload(t))

	return s.caller.Call(ctx, serviceRouting, "PublishRoute", func(ctx context.Context) error {
		return s.routing.PublishRoute(ctx, t.Subdomain, backend)
	})
}

func (s *Service) retractRoute(ctx context.Context, t *types.Tenant) error {
	return s.caller.Call(ctx, serviceRouting, "RetractRoute", func(ctx context.Context) error {
		return s.routing.RetractRoute(ctx, t.Subdomain)
	})
}

func (s *Service) dropDatabase(ctx context.Context, t *types.Tenant) error {
	return s.caller.Call(ctx, serviceInstance, "DropDatabase", func(ctx context.Context) error {
		return s.instance.DropDatabase(ctx, t.DatabaseName)
	})
}

func (s *Service) releaseCapacity(ctx context.Context, t *types.Tenant) error {
	w := workload(t)

	return s.caller.Call(ctx, serviceCompute, "Teardown", func(ctx context.Context) error {
		return s.runtime.Teardown(ctx, w)
	})
}

// transition applies a compare-and-set status change and maps registry errors
// onto the error kinds surfaced to callers.
func (s *Service) transition(ctx context.Context, t *types.Tenant, to types.TenantStatus, changes storage.TenantChanges) (*types.Tenant, error) {
	updated, err := s.storage.TransitionTenant(ctx, t.ID, t.Status, to, changes)

	switch {
	case err == nil:
		s.logger.Debugf("tenant %s: %s -> %s", t.ID, t.Status, to)
		return updated, nil
	case errors.Is(err, storage.ErrStatusMismatch):
		actual := "unknown"
		if updated != nil {
			actual = string(updated.Status)
		} else {
			updated = t
		}
		return updated, &apperrors.ConsistencyError{TenantID: t.ID, Expected: string(t.Status), Actual: actual, Err: err}
	case errors.Is(err, storage.ErrIllegalTransition):
		return t, &apperrors.ConsistencyError{TenantID: t.ID, Expected: "a status leading to " + string(to), Actual: string(t.Status), Err: err}
	case errors.Is(err, storage.ErrDuplicateKey):
		return t, apperrors.NewConflictError("subdomain", t.Subdomain, err)
	case errors.Is(err, storage.ErrNotFound):
		return t, apperrors.NewNotFoundError("tenant", t.ID)
	default:
		return t, fmt.Errorf("failed to move tenant %s to %s: %w", t.ID, to, err)
	}
}

func (s *Service) getTenant(ctx context.Context, id string) (*types.Tenant, error) {
	t, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("tenant", id)
		}
		return nil, fmt.Errorf("failed to get tenant %s: %w", id, err)
	}
	return t, nil
}

// lock takes the tenant lock unless the caller already holds it, as billing
// does when it suspends or resumes a tenant.
func (s *Service) lock(ctx context.Context, id string) (locking.Unlock, error) {
	if locking.Held(ctx, LockKey(id)) {
		return func() {}, nil
	}

	unlock, err := s.locker.Lock(ctx, LockKey(id))
	if err != nil {
		return nil, fmt.Errorf("failed to lock tenant %s: %w", id, err)
	}
	return unlock, nil
}

func (s *Service) notify(ctx context.Context, eventType notification.EventType, t *types.Tenant, data map[string]string) {
	if err := s.notifier.Dispatch(ctx, notification.NewEvent(eventType, t.ID, data)); err != nil {
		s.logger.Warnf("failed to dispatch %s for tenant %s: %v", eventType, t.ID, err)
	}
}

func (s *Service) track(id string, cancel context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight[id] = cancel
}

func (s *Service) untrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inflight, id)
}

// cancelInflight cancels a provisioning run of this process, if any.
func (s *Service) cancelInflight(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancel, ok := s.inflight[id]
	if ok {
		cancel()
	}
	return ok
}

func clone(t *types.Tenant) *types.Tenant {
	c := *t
	c.Modules = slices.Clone(t.Modules)
	c.CompletedSteps = slices.Clone(t.CompletedSteps)
	return &c
}

// reachedBy reports the steps a run failing at failed may have touched.
func reachedBy(failed types.Step) func(types.Step) bool {
	limit := slices.Index(types.ProvisioningSteps, failed)

	return func(step types.Step) bool {
		return limit < 0 || slices.Index(types.ProvisioningSteps, step) <= limit
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
	"github.com/canonical/tenant-orchestrator/internal/locking"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/notification"
	"github.com/canonical/tenant-orchestrator/internal/storage"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/internal/types"
	"github.com/canonical/tenant-orchestrator/internal/validation"
	"github.com/canonical/tenant-orchestrator/pkg/tenant"
)

const (
	reasonExhausted = "usage allowance exhausted"
	reasonLapsed    = "billing period ended without renewal"
)

var _ EngineInterface = (*Engine)(nil)

// Engine tracks billing cycles, usage and payments, and suspends or resumes
// tenants through the orchestrator depending on their subscription state.
type Engine struct {
	storage      StorageInterface
	orchestrator OrchestratorInterface
	notifier     DispatcherInterface
	locker       LockerInterface

	validator *validation.Validator
	cfg       Config
	now       func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RecordUsage appends a usage sample and adds it to the active cycle of the
// tenant. Once the allowance is consumed the cycle is evaluated and a
// ResourceExhaustedError is returned along with the updated cycle.
func (e *Engine) RecordUsage(ctx context.Context, tenantID string, deltaHours decimal.Decimal) (*types.BillingCycle, error) {
	ctx, span := e.tracer.Start(ctx, "billing.Engine.RecordUsage")
	defer span.End()

	if !deltaHours.IsPositive() {
		return nil, apperrors.NewValidationError("delta_hours", "must be positive, got %s", deltaHours)
	}

	var cycle *types.BillingCycle

	err := e.storage.WithTx(ctx, func(ctx context.Context) error {
		active, err := e.storage.GetActiveCycle(ctx, tenantID, true)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return apperrors.NewNotFoundError("active billing cycle", tenantID)
			}
			return err
		}

		if _, err := e.storage.AppendUsageSample(ctx, &types.UsageSample{
			TenantID:       tenantID,
			BillingCycleID: active.ID,
			DeltaHours:     deltaHours,
		}); err != nil {
			return err
		}

		cycle, err = e.storage.IncrementCycleUsage(ctx, active.ID, deltaHours)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !cycle.Exhausted() {
		return cycle, nil
	}

	if _, err := e.EvaluateCycle(ctx, tenantID); err != nil {
		e.logger.Errorf("failed to evaluate exhausted cycle of tenant %s: %v", tenantID, err)
	}

	return cycle, &apperrors.ResourceExhaustedError{
		TenantID: tenantID,
		Resource: "hours",
		Limit:    cycle.HoursAllowed.String(),
	}
}

// EvaluateCycle suspends a tenant whose active cycle is exhausted or lapsed,
// after the grace period when one is configured. A tenant suspended for
// billing whose cycle is current again is resumed.
func (e *Engine) EvaluateCycle(ctx context.Context, tenantID string) (Verdict, error) {
	ctx, span := e.tracer.Start(ctx, "billing.Engine.EvaluateCycle")
	defer span.End()

	ctx, unlock, err := e.lock(ctx, tenantID)
	if err != nil {
		return VerdictNone, err
	}
	defer unlock()

	t, err := e.getTenant(ctx, tenantID)
	if err != nil {
		return VerdictNone, err
	}

	billable := t.Status == types.StatusActive ||
		(t.Status == types.StatusSuspended && t.SuspensionCause == types.SuspensionBilling)
	if !billable {
		return VerdictNone, nil
	}

	cycle, err := e.storage.GetActiveCycle(ctx, tenantID, false)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return VerdictNone, nil
		}
		return VerdictNone, err
	}

	now := e.now().UTC()

	reason := ""
	switch {
	case cycle.Exhausted():
		reason = reasonExhausted
	case cycle.Lapsed(now):
		reason = reasonLapsed
	}

	if reason == "" {
		if t.Status == types.StatusSuspended {
			if _, err := e.orchestrator.ResumeTenant(ctx, tenantID); err != nil {
				return VerdictCurrent, err
			}
			return VerdictResumed, nil
		}
		return VerdictCurrent, nil
	}

	if t.Status == types.StatusActive {
		if inGrace, err := e.grace(ctx, t, cycle, now, reason); err != nil || inGrace {
			return VerdictGrace, err
		}

		if _, err := e.orchestrator.SuspendTenant(ctx, tenantID, types.SuspensionBilling, reason); err != nil {
			return VerdictCurrent, err
		}
	}

	end := cycle.PeriodEnd
	if now.Before(end) {
		end = now
	}

	if err := e.storage.CloseCycle(ctx, cycle.ID, types.CycleExpired, &end); err != nil {
		return VerdictSuspended, fmt.Errorf("failed to expire cycle %s: %w", cycle.ID, err)
	}

	e.logger.Infof("tenant %s suspended, cycle %s expired: %s", tenantID, cycle.ID, reason)

	return VerdictSuspended, nil
}

// grace reports whether suspension is still deferred, starting the grace period
// and warning the tenant on first detection.
func (e *Engine) grace(ctx context.Context, t *types.Tenant, cycle *types.BillingCycle, now time.Time, reason string) (bool, error) {
	if e.cfg.GracePeriod <= 0 {
		return false, nil
	}

	if cycle.GraceStartedAt != nil {
		return now.Before(cycle.GraceStartedAt.Add(e.cfg.GracePeriod)), nil
	}

	if err := e.storage.StartCycleGrace(ctx, cycle.ID, now); err != nil {
		return true, fmt.Errorf("failed to start grace period of cycle %s: %w", cycle.ID, err)
	}

	e.logger.Warnf("tenant %s in grace period: %s", t.ID, reason)
	e.notify(ctx, notification.EventGraceWarning, t.ID, map[string]string{
		"cycle_id":    cycle.ID,
		"reason":      reason,
		"grace_until": now.Add(e.cfg.GracePeriod).Format(time.RFC3339),
	})

	return true, nil
}

// EvaluateAll evaluates every tenant holding an active cycle. A failure on one
// tenant does not stop the others.
func (e *Engine) EvaluateAll(ctx context.Context) error {
	ctx, span := e.tracer.Start(ctx, "billing.Engine.EvaluateAll")
	defer span.End()

	ids, err := e.storage.ListTenantIDsWithActiveCycle(ctx)
	if err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs []error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(e.cfg.Workers, 1))

	for _, id := range ids {
		g.Go(func() error {
			if err := e.auditUsage(gctx, id); err != nil {
				e.logger.Errorf("failed to audit usage of tenant %s: %v", id, err)
			}

			verdict, err := e.EvaluateCycle(gctx, id)
			if err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("tenant %s: %w", id, err))
				mu.Unlock()
				return nil
			}

			if verdict != VerdictCurrent && verdict != VerdictNone {
				e.logger.Debugf("billing evaluation of tenant %s: %s", id, verdict)
			}
			return nil
		})
	}

	_ = g.Wait()

	return errors.Join(errs...)
}

// auditUsage recomputes the usage of the active cycle from its samples and
// corrects the running total when the two disagree.
func (e *Engine) auditUsage(ctx context.Context, tenantID string) error {
	ctx, span := e.tracer.Start(ctx, "billing.Engine.auditUsage")
	defer span.End()

	return e.storage.WithTx(ctx, func(ctx context.Context) error {
		cycle, err := e.storage.GetActiveCycle(ctx, tenantID, true)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil
			}
			return err
		}

		total, err := e.storage.SumCycleUsage(ctx, cycle.ID)
		if err != nil {
			return err
		}

		if total.Equal(cycle.HoursUsed) {
			return nil
		}

		drift := &apperrors.ConsistencyError{
			TenantID: tenantID,
			Expected: total.String() + " hours used",
			Actual:   cycle.HoursUsed.String() + " hours used",
		}
		e.logger.Warnf("usage drift on cycle %s: %v", cycle.ID, drift)

		return e.storage.SetCycleUsage(ctx, cycle.ID, total)
	})
}

// ApplyPayment validates a payment against the plan of the tenant, renews its
// billing cycle and resumes it when it was suspended for billing. Payments are
// deduplicated on their external transaction id.
func (e *Engine) ApplyPayment(ctx context.Context, p Payment) (*types.PaymentTransaction, error) {
	ctx, span := e.tracer.Start(ctx, "billing.Engine.ApplyPayment")
	defer span.End()

	if err := e.validator.Struct(p); err != nil {
		return nil, err
	}
	if !p.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("amount", "must be positive, got %s", p.Amount)
	}

	if existing, err := e.replay(ctx, p); existing != nil || err != nil {
		return existing, err
	}

	ctx, unlock, err := e.lock(ctx, p.TenantID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	t, err := e.getTenant(ctx, p.TenantID)
	if err != nil {
		return nil, err
	}

	// the first cycle is opened at activation, a later delivery can renew it
	if t.Status != types.StatusActive && t.Status != types.StatusSuspended {
		return nil, &apperrors.ConsistencyError{TenantID: t.ID, Expected: "ACTIVE or SUSPENDED", Actual: string(t.Status)}
	}

	plan, err := e.storage.GetPlanByID(ctx, t.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plan %s: %w", t.PlanID, err)
	}

	if existing, err := e.replay(ctx, p); existing != nil || err != nil {
		return existing, err
	}

	var (
		tx     *types.PaymentTransaction
		reason = rejection(plan, p)
	)

	err = e.storage.WithTx(ctx, func(ctx context.Context) error {
		stored, err := e.record(ctx, p)
		if err != nil {
			return err
		}
		tx = stored

		if reason != "" {
			return e.storage.UpdatePaymentStatus(ctx, tx.ID, types.PaymentFailed, &reason)
		}
		if err := e.storage.UpdatePaymentStatus(ctx, tx.ID, types.PaymentValidated, nil); err != nil {
			return err
		}
		return e.renew(ctx, t.ID, plan)
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			if existing, rErr := e.replay(ctx, p); existing != nil || rErr != nil {
				return existing, rErr
			}
		}
		return nil, fmt.Errorf("failed to apply payment %s: %w", p.ExternalTransactionID, err)
	}

	if reason != "" {
		return e.rejected(ctx, tx, reason), nil
	}

	tx.Status = types.PaymentValidated

	e.logger.Infof("payment %s applied to tenant %s", p.ExternalTransactionID, t.ID)
	e.notify(ctx, notification.EventPaymentApplied, t.ID, map[string]string{
		"external_transaction_id": p.ExternalTransactionID,
		"amount":                  p.Amount.String(),
		"currency":                p.Currency,
	})

	if t.Status == types.StatusSuspended && t.SuspensionCause == types.SuspensionBilling {
		if _, err := e.orchestrator.ResumeTenant(ctx, t.ID); err != nil {
			// the next evaluation resumes a billing suspended tenant with a current cycle
			e.logger.Errorf("failed to resume tenant %s after payment: %v", t.ID, err)
		}
	}

	return tx, nil
}

// replay returns the stored transaction of an already delivered payment.
func (e *Engine) replay(ctx context.Context, p Payment) (*types.PaymentTransaction, error) {
	existing, err := e.storage.GetPaymentByExternalID(ctx, p.ExternalTransactionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if existing.TenantID != p.TenantID {
		return nil, apperrors.NewConflictError("payment", p.ExternalTransactionID, nil)
	}

	// a pending row was never settled, the delivery is applied again
	if existing.Status == types.PaymentPending {
		return nil, nil
	}

	e.logger.Debugf("payment %s already recorded as %s", p.ExternalTransactionID, existing.Status)

	return existing, nil
}

// record returns the pending transaction of the payment, inserting it on the
// first delivery.
func (e *Engine) record(ctx context.Context, p Payment) (*types.PaymentTransaction, error) {
	existing, err := e.storage.GetPaymentByExternalID(ctx, p.ExternalTransactionID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	return e.storage.CreatePayment(ctx, &types.PaymentTransaction{
		TenantID:              p.TenantID,
		ExternalTransactionID: p.ExternalTransactionID,
		Amount:                p.Amount,
		Currency:              p.Currency,
	})
}

func (e *Engine) rejected(ctx context.Context, tx *types.PaymentTransaction, reason string) *types.PaymentTransaction {
	tx.Status = types.PaymentFailed
	tx.FailureReason = &reason

	e.logger.Warnf("payment %s rejected: %s", tx.ExternalTransactionID, reason)
	e.notify(ctx, notification.EventPaymentFailed, tx.TenantID, map[string]string{
		"external_transaction_id": tx.ExternalTransactionID,
		"reason":                  reason,
	})

	return tx
}

// renew closes the active cycle, if any, and opens the next one where the
// latest cycle ended so cycles stay contiguous.
func (e *Engine) renew(ctx context.Context, tenantID string, plan *types.Plan) error {
	now := e.now().UTC()
	start := now

	active, err := e.storage.GetActiveCycle(ctx, tenantID, true)
	switch {
	case err == nil:
		if err := e.storage.CloseCycle(ctx, active.ID, types.CycleRenewed, &now); err != nil {
			return err
		}
	case errors.Is(err, storage.ErrNotFound):
		cycles, err := e.storage.ListCycles(ctx, tenantID)
		if err != nil {
			return err
		}
		if len(cycles) > 0 {
			start = cycles[len(cycles)-1].PeriodEnd
		}
	default:
		return err
	}

	from := now
	if start.After(from) {
		from = start
	}

	_, err = e.storage.CreateBillingCycle(ctx, &types.BillingCycle{
		TenantID:     tenantID,
		PeriodStart:  start,
		PeriodEnd:    from.Add(plan.CycleLength()),
		HoursAllowed: plan.HoursPerCycle,
		HoursUsed:    decimal.Zero,
	})
	return err
}

func (e *Engine) GetPayment(ctx context.Context, externalID string) (*types.PaymentTransaction, error) {
	ctx, span := e.tracer.Start(ctx, "billing.Engine.GetPayment")
	defer span.End()

	p, err := e.storage.GetPaymentByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("payment", externalID)
		}
		return nil, err
	}

	return p, nil
}

func (e *Engine) ListCycles(ctx context.Context, tenantID string) ([]*types.BillingCycle, error) {
	ctx, span := e.tracer.Start(ctx, "billing.Engine.ListCycles")
	defer span.End()

	if _, err := e.getTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	return e.storage.ListCycles(ctx, tenantID)
}

func (e *Engine) CreatePlan(ctx context.Context, req CreatePlanRequest) (*types.Plan, error) {
	ctx, span := e.tracer.Start(ctx, "billing.Engine.CreatePlan")
	defer span.End()

	if err := e.validator.Struct(req); err != nil {
		return nil, err
	}
	if !req.HoursPerCycle.IsPositive() {
		return nil, apperrors.NewValidationError("hours_per_cycle", "must be positive")
	}
	if req.Price.IsNegative() {
		return nil, apperrors.NewValidationError("price", "must not be negative")
	}

	plan, err := e.storage.CreatePlan(ctx, &types.Plan{
		Name:          req.Name,
		MaxUsers:      req.MaxUsers,
		StorageLimit:  req.StorageLimit,
		HoursPerCycle: req.HoursPerCycle,
		CycleDays:     req.CycleDays,
		Price:         req.Price,
		Currency:      req.Currency,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, apperrors.NewConflictError("plan", req.Name, err)
		}
		return nil, err
	}

	return plan, nil
}

func (e *Engine) GetPlan(ctx context.Context, id string) (*types.Plan, error) {
	ctx, span := e.tracer.Start(ctx, "billing.Engine.GetPlan")
	defer span.End()

	p, err := e.storage.GetPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("plan", id)
		}
		return nil, err
	}

	return p, nil
}

func (e *Engine) ListPlans(ctx context.Context) ([]*types.Plan, error) {
	ctx, span := e.tracer.Start(ctx, "billing.Engine.ListPlans")
	defer span.End()

	return e.storage.ListPlans(ctx)
}

// lock takes the tenant lock shared with the orchestrator and marks it held on
// the returned context so orchestrator calls made under it do not block.
func (e *Engine) lock(ctx context.Context, tenantID string) (context.Context, locking.Unlock, error) {
	key := tenant.LockKey(tenantID)

	if locking.Held(ctx, key) {
		return ctx, func() {}, nil
	}

	unlock, err := e.locker.Lock(ctx, key)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to lock tenant %s: %w", tenantID, err)
	}

	return locking.WithHeld(ctx, key), unlock, nil
}

func (e *Engine) getTenant(ctx context.Context, id string) (*types.Tenant, error) {
	t, err := e.storage.GetTenantByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("tenant", id)
		}
		return nil, fmt.Errorf("failed to get tenant %s: %w", id, err)
	}
	return t, nil
}

func (e *Engine) notify(ctx context.Context, eventType notification.EventType, tenantID string, data map[string]string) {
	if err := e.notifier.Dispatch(ctx, notification.NewEvent(eventType, tenantID, data)); err != nil {
		e.logger.Warnf("failed to dispatch %s for tenant %s: %v", eventType, tenantID, err)
	}
}

// rejection returns why a payment cannot renew the plan, or an empty string.
func rejection(plan *types.Plan, p Payment) string {
	if p.Currency != plan.Currency {
		return fmt.Sprintf("currency %s does not match plan currency %s", p.Currency, plan.Currency)
	}
	if p.Amount.LessThan(plan.Price) {
		return fmt.Sprintf("amount %s is below the plan price %s", p.Amount, plan.Price)
	}
	return ""
}

func NewEngine(
	storage StorageInterface,
	orchestrator OrchestratorInterface,
	notifier DispatcherInterface,
	locker LockerInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Engine {
	e := new(Engine)

	e.storage = storage
	e.orchestrator = orchestrator
	e.notifier = notifier
	e.locker = locker

	e.validator = validation.NewValidator()
	e.cfg = cfg
	e.now = time.Now

	e.tracer = tracer
	e.monitor = monitor
	e.logger = logger

	return e
}

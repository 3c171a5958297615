// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/canonical/tenant-orchestrator/internal/types"
)

var cycleColumns = []string{
	"id",
	"tenant_id",
	"period_start",
	"period_end",
	"hours_allowed",
	"hours_used",
	"cycle_status",
	"grace_started_at",
	"created_at",
}

func (s *Storage) CreateBillingCycle(ctx context.Context, c *types.BillingCycle) (*types.BillingCycle, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBillingCycle")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate cycle ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("billing_cycles").
		Columns("id", "tenant_id", "period_start", "period_end", "hours_allowed", "hours_used", "cycle_status").
		Values(id.String(), c.TenantID, c.PeriodStart, c.PeriodEnd, c.HoursAllowed, c.HoursUsed, types.CycleActive).
		Suffix("RETURNING " + strings.Join(cycleColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanCycle(row)
	if err != nil {
		return nil, wrapConstraintError(err, "failed to insert billing cycle")
	}

	return created, nil
}

// GetActiveCycle returns the single active cycle of a tenant. With forUpdate the
// row stays locked until the surrounding transaction ends.
func (s *Storage) GetActiveCycle(ctx context.Context, tenantID string, forUpdate bool) (*types.BillingCycle, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveCycle")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(cycleColumns...).
		From("billing_cycles").
		Where(sq.Eq{"tenant_id": tenantID, "cycle_status": types.CycleActive})

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	c, err := scanCycle(query.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active cycle: %w", err)
	}

	return c, nil
}

func (s *Storage) ListCycles(ctx context.Context, tenantID string) ([]*types.BillingCycle, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCycles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(cycleColumns...).
		From("billing_cycles").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("period_start ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list billing cycles: %w", err)
	}
	defer rows.Close()

	var cycles []*types.BillingCycle
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan billing cycle: %w", err)
		}
		cycles = append(cycles, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating billing cycle rows: %w", err)
	}

	return cycles, nil
}

func (s *Storage) IncrementCycleUsage(ctx context.Context, cycleID string, delta decimal.Decimal) (*types.BillingCycle, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IncrementCycleUsage")
	defer span.End()

	row := s.db.Statement(ctx).
		Update("billing_cycles").
		Set("hours_used", sq.Expr("hours_used + ?", delta)).
		Where(sq.Eq{"id": cycleID, "cycle_status": types.CycleActive}).
		Suffix("RETURNING " + strings.Join(cycleColumns, ", ")).
		QueryRowContext(ctx)

	c, err := scanCycle(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrStatusMismatch
		}
		return nil, fmt.Errorf("failed to increment cycle usage: %w", err)
	}

	return c, nil
}

func (s *Storage) SetCycleUsage(ctx context.Context, cycleID string, hours decimal.Decimal) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetCycleUsage")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("billing_cycles").
		Set("hours_used", hours).
		Where(sq.Eq{"id": cycleID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to set cycle usage: %w", err)
	}

	return checkAffected(res, ErrNotFound)
}

// CloseCycle moves an active cycle to a final status, optionally truncating its period.
func (s *Storage) CloseCycle(ctx context.Context, cycleID string, status types.CycleStatus, periodEnd *time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.CloseCycle")
	defer span.End()

	if status == types.CycleActive {
		return fmt.Errorf("cannot close a cycle as %s: %w", status, ErrIllegalTransition)
	}

	query := s.db.Statement(ctx).
		Update("billing_cycles").
		Set("cycle_status", status).
		Where(sq.Eq{"id": cycleID, "cycle_status": types.CycleActive})

	if periodEnd != nil {
		query = query.Set("period_end", *periodEnd)
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return wrapConstraintError(err, "failed to close billing cycle")
	}

	return checkAffected(res, ErrStatusMismatch)
}

func (s *Storage) StartCycleGrace(ctx context.Context, cycleID string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.StartCycleGrace")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("billing_cycles").
		Set("grace_started_at", at).
		Where(sq.Eq{"id": cycleID, "cycle_status": types.CycleActive, "grace_started_at": nil}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to start grace period: %w", err)
	}

	return checkAffected(res, ErrStatusMismatch)
}

// SumCycleUsage totals the usage samples recorded against a cycle of the same tenant.
func (s *Storage) SumCycleUsage(ctx context.Context, cycleID string) (decimal.Decimal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.SumCycleUsage")
	defer span.End()

	var total decimal.Decimal

	err := s.db.Statement(ctx).
		Select("COALESCE(SUM(u.delta_hours), 0)").
		From("usage_tracking u").
		Join("billing_cycles c ON c.id = u.billing_cycle_id AND c.tenant_id = u.tenant_id").
		Where(sq.Eq{"c.id": cycleID}).
		QueryRowContext(ctx).
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum cycle usage: %w", err)
	}

	return total, nil
}

// ListTenantIDsWithActiveCycle returns the ACTIVE and SUSPENDED tenants holding an active billing cycle.
func (s *Storage) ListTenantIDsWithActiveCycle(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenantIDsWithActiveCycle")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("c.tenant_id").
		From("billing_cycles c").
		Join("tenants t ON t.id = c.tenant_id").
		Where(sq.Eq{
			"c.cycle_status": types.CycleActive,
			"t.status":       []types.TenantStatus{types.StatusActive, types.StatusSuspended},
		}).
		OrderBy("c.tenant_id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants with active cycles: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan tenant ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant ID rows: %w", err)
	}

	return ids, nil
}

func (s *Storage) AppendUsageSample(ctx context.Context, u *types.UsageSample) (*types.UsageSample, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AppendUsageSample")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate usage sample ID: %w", err)
	}

	sample := &types.UsageSample{
		ID:             id.String(),
		TenantID:       u.TenantID,
		BillingCycleID: u.BillingCycleID,
		DeltaHours:     u.DeltaHours,
	}

	err = s.db.Statement(ctx).
		Insert("usage_tracking").
		Columns("id", "tenant_id", "billing_cycle_id", "delta_hours").
		Values(sample.ID, sample.TenantID, sample.BillingCycleID, sample.DeltaHours).
		Suffix("RETURNING recorded_at").
		QueryRowContext(ctx).
		Scan(&sample.RecordedAt)
	if err != nil {
		return nil, wrapConstraintError(err, "failed to insert usage sample")
	}

	return sample, nil
}

func scanCycle(row rowScanner) (*types.BillingCycle, error) {
	var (
		c     types.BillingCycle
		grace sql.NullTime
	)

	err := row.Scan(
		&c.ID,
		&c.TenantID,
		&c.PeriodStart,
		&c.PeriodEnd,
		&c.HoursAllowed,
		&c.HoursUsed,
		&c.Status,
		&grace,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.GraceStartedAt = nullableTime(grace)

	return &c, nil
}

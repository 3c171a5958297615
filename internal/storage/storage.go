// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/tenant-orchestrator/internal/db"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var tenantColumns = []string{
	"id",
	"request_id",
	"subdomain",
	"database_name",
	"status",
	"plan_id",
	"max_users",
	"storage_limit",
	"modules",
	"completed_steps",
	"suspension_cause",
	"failure_reason",
	"repair_attempts",
	"alerted_at",
	"last_backup_at",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// WithTx runs fn in a transaction shared by every storage call made with the context it receives.
func (s *Storage) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return s.db.WithTx(ctx, fn)
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	modules, err := encodeList(t.Modules)
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "request_id", "subdomain", "database_name", "status", "plan_id", "max_users", "storage_limit", "modules").
		Values(id.String(), t.RequestID, t.Subdomain, t.DatabaseName, types.StatusPending, t.PlanID, t.MaxUsers, t.StorageLimit, modules).
		Suffix("RETURNING " + strings.Join(tenantColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanTenant(row)
	if err != nil {
		return nil, wrapConstraintError(err, "failed to insert tenant")
	}

	return created, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetTenantByRequestID(ctx context.Context, requestID string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByRequestID")
	defer span.End()

	return s.getTenant(ctx, sq.Eq{"request_id": requestID})
}

func (s *Storage) getTenant(ctx context.Context, where sq.Eq) (*types.Tenant, error) {
	row := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		Where(where).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (s *Storage) ListTenants(ctx context.Context, filter TenantFilter) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTenants")
	defer span.End()

	pageSize := db.PageSize(filter.Size)

	query := s.db.Statement(ctx).
		Select(tenantColumns...).
		From("tenants").
		OrderBy("created_at ASC").
		Limit(pageSize).
		Offset(db.Offset(filter.Page, pageSize))

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, st := range filter.Statuses {
			statuses = append(statuses, string(st))
		}
		query = query.Where(sq.Eq{"status": statuses})
	}

	if filter.UpdatedBefore != nil {
		query = query.Where(sq.Lt{"updated_at": *filter.UpdatedBefore})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// TransitionTenant moves a tenant from one status to another only if the stored
// status still equals from, applying changes in the same statement.
func (s *Storage) TransitionTenant(ctx context.Context, id string, from, to types.TenantStatus, changes TenantChanges) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.TransitionTenant")
	defer span.End()

	if !from.CanTransitionTo(to) {
		return nil, fmt.Errorf("%s -> %s: %w", from, to, ErrIllegalTransition)
	}

	updateMap := map[string]interface{}{
		"status":     to,
		"updated_at": sq.Expr("NOW()"),
	}

	if changes.FailureReason != nil {
		updateMap["failure_reason"] = *changes.FailureReason
	} else if changes.ClearFailureReason {
		updateMap["failure_reason"] = nil
	}

	if changes.SuspensionCause != nil {
		updateMap["suspension_cause"] = *changes.SuspensionCause
	}

	if changes.CompletedSteps != nil {
		steps, err := encodeList(changes.CompletedSteps)
		if err != nil {
			return nil, err
		}
		updateMap["completed_steps"] = steps
	}

	if changes.ResetRepairs {
		updateMap["repair_attempts"] = 0
		updateMap["alerted_at"] = nil
	}

	row := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": id, "status": from}).
		Suffix("RETURNING " + strings.Join(tenantColumns, ", ")).
		QueryRowContext(ctx)

	t, err := scanTenant(row)
	if err == nil {
		return t, nil
	}

	if !isNoRows(err) {
		return nil, wrapConstraintError(err, "failed to transition tenant")
	}

	current, getErr := s.getTenant(ctx, sq.Eq{"id": id})
	if getErr != nil {
		return nil, getErr
	}

	return current, fmt.Errorf("expected %s, found %s: %w", from, current.Status, ErrStatusMismatch)
}

func (s *Storage) UpdateTenantSteps(ctx context.Context, id string, status types.TenantStatus, steps []types.Step) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenantSteps")
	defer span.End()

	encoded, err := encodeList(steps)
	if err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("completed_steps", encoded).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": status}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update tenant steps: %w", err)
	}

	return checkAffected(res, ErrStatusMismatch)
}

func (s *Storage) SetRepairState(ctx context.Context, id string, attempts int, alertedAt *time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetRepairState")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("repair_attempts", attempts).
		Set("alerted_at", alertedAt).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update repair state: %w", err)
	}

	return checkAffected(res, ErrNotFound)
}

func scanTenant(row rowScanner) (*types.Tenant, error) {
	var (
		t            types.Tenant
		storageLimit sql.NullInt64
		modules      []byte
		steps        []byte
		failure      sql.NullString
		alertedAt    sql.NullTime
		lastBackupAt sql.NullTime
	)

	err := row.Scan(
		&t.ID,
		&t.RequestID,
		&t.Subdomain,
		&t.DatabaseName,
		&t.Status,
		&t.PlanID,
		&t.MaxUsers,
		&storageLimit,
		&modules,
		&steps,
		&t.SuspensionCause,
		&failure,
		&t.RepairAttempts,
		&alertedAt,
		&lastBackupAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.StorageLimit = nullableInt64(storageLimit)
	t.FailureReason = nullableString(failure)
	t.AlertedAt = nullableTime(alertedAt)
	t.LastBackupAt = nullableTime(lastBackupAt)

	if err := decodeList(modules, &t.Modules); err != nil {
		return nil, fmt.Errorf("failed to decode modules: %w", err)
	}
	if err := decodeList(steps, &t.CompletedSteps); err != nil {
		return nil, fmt.Errorf("failed to decode completed steps: %w", err)
	}

	return &t, nil
}

func encodeList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode list: %w", err)
	}

	return b, nil
}

func decodeList[T any](raw []byte, out *[]T) error {
	if len(raw) == 0 {
		*out = []T{}
		return nil
	}
	return json.Unmarshal(raw, out)
}

func nullableInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	i := v.Int64
	return &i
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}

func checkAffected(res sql.Result, noneErr error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return noneErr
	}
	return nil
}

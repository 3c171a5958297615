// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/tenant-orchestrator/internal/types"
)

var planColumns = []string{
	"id",
	"name",
	"max_users",
	"storage_limit",
	"hours_per_cycle",
	"cycle_days",
	"price",
	"currency",
	"created_at",
}

func (s *Storage) CreatePlan(ctx context.Context, p *types.Plan) (*types.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePlan")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("plans").
		Columns("id", "name", "max_users", "storage_limit", "hours_per_cycle", "cycle_days", "price", "currency").
		Values(id.String(), p.Name, p.MaxUsers, p.StorageLimit, p.HoursPerCycle, p.CycleDays, p.Price, p.Currency).
		Suffix("RETURNING " + strings.Join(planColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanPlan(row)
	if err != nil {
		return nil, wrapConstraintError(err, "failed to insert plan")
	}

	return created, nil
}

func (s *Storage) GetPlanByID(ctx context.Context, id string) (*types.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPlanByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(planColumns...).
		From("plans").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	p, err := scanPlan(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return p, nil
}

func (s *Storage) ListPlans(ctx context.Context) ([]*types.Plan, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPlans")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(planColumns...).
		From("plans").
		OrderBy("name ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []*types.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plan: %w", err)
		}
		plans = append(plans, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plan rows: %w", err)
	}

	return plans, nil
}

func scanPlan(row rowScanner) (*types.Plan, error) {
	var (
		p            types.Plan
		storageLimit sql.NullInt64
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.MaxUsers,
		&storageLimit,
		&p.HoursPerCycle,
		&p.CycleDays,
		&p.Price,
		&p.Currency,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.StorageLimit = nullableInt64(storageLimit)

	return &p, nil
}

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

var paymentColumns = []string{
	"id",
	"tenant_id",
	"external_transaction_id",
	"amount",
	"currency",
	"status",
	"failure_reason",
	"created_at",
	"updated_at",
}

// CreatePayment stores a pending transaction. A reused external transaction id yields ErrDuplicateKey.
func (s *Storage) CreatePayment(ctx context.Context, p *types.PaymentTransaction) (*types.PaymentTransaction, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePayment")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate payment ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("payment_transactions").
		Columns("id", "tenant_id", "external_transaction_id", "amount", "currency", "status").
		Values(id.String(), p.TenantID, p.ExternalTransactionID, p.Amount, p.Currency, types.PaymentPending).
		Suffix("RETURNING " + strings.Join(paymentColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanPayment(row)
	if err != nil {
		return nil, wrapConstraintError(err, "failed to insert payment transaction")
	}

	return created, nil
}

func (s *Storage) GetPaymentByExternalID(ctx context.Context, externalID string) (*types.PaymentTransaction, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPaymentByExternalID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(paymentColumns...).
		From("payment_transactions").
		Where(sq.Eq{"external_transaction_id": externalID}).
		QueryRowContext(ctx)

	p, err := scanPayment(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment transaction: %w", err)
	}

	return p, nil
}

func (s *Storage) UpdatePaymentStatus(ctx context.Context, id string, status types.PaymentStatus, reason *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePaymentStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("payment_transactions").
		Set("status", status).
		Set("failure_reason", reason).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return checkAffected(res, ErrNotFound)
}

func scanPayment(row rowScanner) (*types.PaymentTransaction, error) {
	var (
		p       types.PaymentTransaction
		failure sql.NullString
	)

	err := row.Scan(
		&p.ID,
		&p.TenantID,
		&p.ExternalTransactionID,
		&p.Amount,
		&p.Currency,
		&p.Status,
		&failure,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.FailureReason = nullableString(failure)

	return &p, nil
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/canonical/tenant-orchestrator/internal/db"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/internal/types"
)

func setupStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	client := db.NewDBClientFromDB(conn, tracer, monitor, logger)

	return NewStorage(client, tracer, monitor, logger), mock
}

func tenantRow(id, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(tenantColumns).AddRow(
		id, "req-1", "acme", "acme_db", status, "plan-1", 5, nil,
		[]byte(`["sale"]`), []byte(`["capacity","database"]`), "", nil, 0, nil, nil, now, now,
	)
}

func TestStorage_CreateTenant(t *testing.T) {
	testCases := []struct {
		name        string
		setupMock   func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tenants (id,request_id,subdomain,database_name,status,plan_id,max_users,storage_limit,modules)")).
					WithArgs(sqlmock.AnyArg(), "req-1", "acme", "acme_db", "PENDING", "plan-1", 5, nil, []byte(`["sale"]`)).
					WillReturnRows(tenantRow("tenant-1", "PENDING"))
			},
		},
		{
			name: "live subdomain taken",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO tenants").
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "tenants_live_subdomain_key"})
			},
			expectedErr: ErrDuplicateKey,
		},
		{
			name: "unknown plan",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO tenants").
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
			expectedErr: ErrForeignKeyViolation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := setupStorage(t)
			tc.setupMock(mock)

			tenant, err := s.CreateTenant(context.Background(), &types.Tenant{
				RequestID:    "req-1",
				Subdomain:    "acme",
				DatabaseName: "acme_db",
				PlanID:       "plan-1",
				MaxUsers:     5,
				Modules:      []string{"sale"},
			})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tenant.Status != types.StatusPending {
					t.Errorf("expected status PENDING, got %s", tenant.Status)
				}
				if len(tenant.Modules) != 1 || tenant.Modules[0] != "sale" {
					t.Errorf("unexpected modules %v", tenant.Modules)
				}
				if !tenant.HasStep(types.StepDatabase) {
					t.Errorf("expected database step, got %v", tenant.CompletedSteps)
				}
				if tenant.StorageLimit != nil {
					t.Errorf("expected nil storage limit, got %v", *tenant.StorageLimit)
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_GetTenantByID_NotFound(t *testing.T) {
	s, mock := setupStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tenants WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(tenantColumns))

	_, err := s.GetTenantByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStorage_TransitionTenant(t *testing.T) {
	reason := "database step failed"

	testCases := []struct {
		name           string
		from, to       types.TenantStatus
		setupMock      func(sqlmock.Sqlmock)
		expectedStatus types.TenantStatus
		expectedErr    error
	}{
		{
			name: "applied",
			from: types.StatusCreating,
			to:   types.StatusFailed,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE tenants SET .*failure_reason = \$1.* WHERE id = \$\d+ AND status = \$\d+ RETURNING`).
					WillReturnRows(tenantRow("tenant-1", "FAILED"))
			},
			expectedStatus: types.StatusFailed,
		},
		{
			name: "precondition lost",
			from: types.StatusCreating,
			to:   types.StatusFailed,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE tenants SET").
					WillReturnRows(sqlmock.NewRows(tenantColumns))
				mock.ExpectQuery(regexp.QuoteMeta("FROM tenants WHERE id = $1")).
					WithArgs("tenant-1").
					WillReturnRows(tenantRow("tenant-1", "ACTIVE"))
			},
			expectedStatus: types.StatusActive,
			expectedErr:    ErrStatusMismatch,
		},
		{
			name:        "illegal edge never reaches the database",
			from:        types.StatusActive,
			to:          types.StatusCreating,
			setupMock:   func(sqlmock.Sqlmock) {},
			expectedErr: ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := setupStorage(t)
			tc.setupMock(mock)

			tenant, err := s.TransitionTenant(context.Background(), "tenant-1", tc.from, tc.to, TenantChanges{FailureReason: &reason})

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tc.expectedStatus != "" && (tenant == nil || tenant.Status != tc.expectedStatus) {
				t.Errorf("expected tenant in %s, got %+v", tc.expectedStatus, tenant)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_ListTenants_Filters(t *testing.T) {
	s, mock := setupStorage(t)
	before := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM tenants WHERE status IN ($1,$2) AND updated_at < $3 ORDER BY created_at ASC LIMIT 10 OFFSET 10")).
		WithArgs("PENDING", "CREATING", before).
		WillReturnRows(tenantRow("tenant-1", "CREATING"))

	tenants, err := s.ListTenants(context.Background(), TenantFilter{
		Statuses:      []types.TenantStatus{types.StatusPending, types.StatusCreating},
		UpdatedBefore: &before,
		Page:          2,
		Size:          10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tenants) != 1 {
		t.Fatalf("expected 1 tenant, got %d", len(tenants))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_UpdateTenantSteps_StatusMoved(t *testing.T) {
	s, mock := setupStorage(t)

	mock.ExpectExec("UPDATE tenants SET completed_steps").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdateTenantSteps(context.Background(), "tenant-1", types.StatusCreating, []types.Step{types.StepCapacity})
	if !errors.Is(err, ErrStatusMismatch) {
		t.Fatalf("expected ErrStatusMismatch, got %v", err)
	}
}

func TestStorage_WithTx_RecordUsage(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM billing_cycles WHERE cycle_status = $1 AND tenant_id = $2 FOR UPDATE")).
		WithArgs("active", "tenant-1").
		WillReturnRows(sqlmock.NewRows(cycleColumns).AddRow("cycle-1", "tenant-1", now, now.Add(time.Hour), "10", "2", "active", nil, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO usage_tracking")).
		WillReturnRows(sqlmock.NewRows([]string{"recorded_at"}).AddRow(now))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE billing_cycles SET hours_used = hours_used + $1")).
		WillReturnRows(sqlmock.NewRows(cycleColumns).AddRow("cycle-1", "tenant-1", now, now.Add(time.Hour), "10", "3.5", "active", nil, now))
	mock.ExpectCommit()

	var updated *types.BillingCycle
	err := s.WithTx(context.Background(), func(ctx context.Context) error {
		cycle, err := s.GetActiveCycle(ctx, "tenant-1", true)
		if err != nil {
			return err
		}

		delta := decimal.RequireFromString("1.5")
		if _, err := s.AppendUsageSample(ctx, &types.UsageSample{TenantID: "tenant-1", BillingCycleID: cycle.ID, DeltaHours: delta}); err != nil {
			return err
		}

		updated, err = s.IncrementCycleUsage(ctx, cycle.ID, delta)
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !updated.HoursUsed.Equal(decimal.RequireFromString("3.5")) {
		t.Errorf("expected 3.5 hours used, got %s", updated.HoursUsed)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStorage_CloseCycle(t *testing.T) {
	end := time.Now()

	testCases := []struct {
		name        string
		status      types.CycleStatus
		setupMock   func(sqlmock.Sqlmock)
		expectedErr error
	}{
		{
			name:   "renewed with truncated period",
			status: types.CycleRenewed,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE billing_cycles SET cycle_status = $1, period_end = $2 WHERE cycle_status = $3 AND id = $4")).
					WithArgs("renewed", end, "active", "cycle-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "already closed",
			status: types.CycleExpired,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE billing_cycles").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedErr: ErrStatusMismatch,
		},
		{
			name:        "active is not a final status",
			status:      types.CycleActive,
			setupMock:   func(sqlmock.Sqlmock) {},
			expectedErr: ErrIllegalTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mock := setupStorage(t)
			tc.setupMock(mock)

			var periodEnd *time.Time
			if tc.status == types.CycleRenewed {
				periodEnd = &end
			}

			err := s.CloseCycle(context.Background(), "cycle-1", tc.status, periodEnd)
			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestStorage_CreateBillingCycle_Overlap(t *testing.T) {
	s, mock := setupStorage(t)

	mock.ExpectQuery("INSERT INTO billing_cycles").
		WillReturnError(&pgconn.PgError{Code: "23P01"})

	_, err := s.CreateBillingCycle(context.Background(), &types.BillingCycle{
		TenantID:     "tenant-1",
		PeriodStart:  time.Now(),
		PeriodEnd:    time.Now().Add(time.Hour),
		HoursAllowed: decimal.NewFromInt(10),
	})
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
}

func TestStorage_SumCycleUsage(t *testing.T) {
	s, mock := setupStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM usage_tracking u JOIN billing_cycles c ON c.id = u.billing_cycle_id AND c.tenant_id = u.tenant_id WHERE c.id = $1")).
		WithArgs("cycle-1").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("4.25"))

	total, err := s.SumCycleUsage(context.Background(), "cycle-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("4.25")) {
		t.Errorf("expected 4.25, got %s", total)
	}
}

func TestStorage_Payments(t *testing.T) {
	s, mock := setupStorage(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO payment_transactions").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectQuery(regexp.QuoteMeta("FROM payment_transactions WHERE external_transaction_id = $1")).
		WithArgs("ext-1").
		WillReturnRows(sqlmock.NewRows(paymentColumns).AddRow("pay-1", "tenant-1", "ext-1", "49.00", "EUR", "validated", nil, now, now))

	_, err := s.CreatePayment(context.Background(), &types.PaymentTransaction{
		TenantID:              "tenant-1",
		ExternalTransactionID: "ext-1",
		Amount:                decimal.NewFromInt(49),
		Currency:              "EUR",
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	stored, err := s.GetPaymentByExternalID(context.Background(), "ext-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != types.PaymentValidated || stored.FailureReason != nil {
		t.Errorf("unexpected stored payment %+v", stored)
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type Tenant struct {
	ID              string          `db:"id"`
	RequestID       string          `db:"request_id"`
	Subdomain       string          `db:"subdomain"`
	DatabaseName    string          `db:"database_name"`
	Status          TenantStatus    `db:"status"`
	PlanID          string          `db:"plan_id"`
	MaxUsers        int             `db:"max_users"`
	StorageLimit    *int64          `db:"storage_limit"`
	Modules         []string        `db:"modules"`
	CompletedSteps  []Step          `db:"completed_steps"`
	SuspensionCause SuspensionCause `db:"suspension_cause"`
	FailureReason   *string         `db:"failure_reason"`
	RepairAttempts  int             `db:"repair_attempts"`
	AlertedAt       *time.Time      `db:"alerted_at"`
	LastBackupAt    *time.Time      `db:"last_backup_at"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// HasStep reports whether the adapter acknowledged the given provisioning step.
func (t *Tenant) HasStep(step Step) bool {
	return slices.Contains(t.CompletedSteps, step)
}

// HoldsNames reports whether the tenant still reserves its subdomain and database name.
// A DELETING tenant releases them once its route and database are gone.
func (t *Tenant) HoldsNames() bool {
	switch t.Status {
	case StatusPending, StatusCreating, StatusActive, StatusSuspended:
		return true
	case StatusDeleting:
		return t.HasStep(StepRoute) || t.HasStep(StepDatabase)
	default:
		return false
	}
}

type Plan struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	MaxUsers      int             `db:"max_users"`
	StorageLimit  *int64          `db:"storage_limit"`
	HoursPerCycle decimal.Decimal `db:"hours_per_cycle"`
	CycleDays     int             `db:"cycle_days"`
	Price         decimal.Decimal `db:"price"`
	Currency      string          `db:"currency"`
	CreatedAt     time.Time       `db:"created_at"`
}

// CycleLength is the duration of one billing cycle for the plan.
func (p *Plan) CycleLength() time.Duration {
	return time.Duration(p.CycleDays) * 24 * time.Hour
}

type CycleStatus string

const (
	CycleActive  CycleStatus = "active"
	CycleExpired CycleStatus = "expired"
	CycleRenewed CycleStatus = "renewed"
)

type BillingCycle struct {
	ID             string          `db:"id"`
	TenantID       string          `db:"tenant_id"`
	PeriodStart    time.Time       `db:"period_start"`
	PeriodEnd      time.Time       `db:"period_end"`
	HoursAllowed   decimal.Decimal `db:"hours_allowed"`
	HoursUsed      decimal.Decimal `db:"hours_used"`
	Status         CycleStatus     `db:"cycle_status"`
	GraceStartedAt *time.Time      `db:"grace_started_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

// Exhausted reports whether the allowance of the cycle has been consumed.
func (c *BillingCycle) Exhausted() bool {
	return c.HoursUsed.GreaterThanOrEqual(c.HoursAllowed)
}

// Lapsed reports whether the cycle period ended before now.
func (c *BillingCycle) Lapsed(now time.Time) bool {
	return !now.Before(c.PeriodEnd)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentValidated PaymentStatus = "validated"
	PaymentFailed    PaymentStatus = "failed"
)

type PaymentTransaction struct {
	ID                    string          `db:"id"`
	TenantID              string          `db:"tenant_id"`
	ExternalTransactionID string          `db:"external_transaction_id"`
	Amount                decimal.Decimal `db:"amount"`
	Currency              string          `db:"currency"`
	Status                PaymentStatus   `db:"status"`
	FailureReason         *string         `db:"failure_reason"`
	CreatedAt             time.Time       `db:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at"`
}

type UsageSample struct {
	ID             string          `db:"id"`
	TenantID       string          `db:"tenant_id"`
	BillingCycleID string          `db:"billing_cycle_id"`
	DeltaHours     decimal.Decimal `db:"delta_hours"`
	RecordedAt     time.Time       `db:"recorded_at"`
}

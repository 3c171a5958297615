// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/canonical/tenant-orchestrator/internal/types"
)

type Config struct {
	// GracePeriod defers the suspension of a tenant whose cycle ran out. Zero suspends immediately.
	GracePeriod time.Duration
	Workers     int
}

// Verdict is the outcome of evaluating the active cycle of a tenant.
type Verdict string

const (
	// VerdictNone means there was nothing to evaluate.
	VerdictNone      Verdict = "none"
	VerdictCurrent   Verdict = "current"
	VerdictGrace     Verdict = "grace"
	VerdictSuspended Verdict = "suspended"
	VerdictResumed   Verdict = "resumed"
)

// Payment is the body of the payment webhook.
type Payment struct {
	ExternalTransactionID string          `json:"external_transaction_id" validate:"required,max=255"`
	TenantID              string          `json:"tenant_id" validate:"required,uuid"`
	Amount                decimal.Decimal `json:"amount"`
	Currency              string          `json:"currency" validate:"required,currency"`
}

type CreatePlanRequest struct {
	Name          string          `json:"name" validate:"required,max=128"`
	MaxUsers      int             `json:"max_users" validate:"required,min=1"`
	StorageLimit  *int64          `json:"storage_limit" validate:"omitempty,min=0"`
	HoursPerCycle decimal.Decimal `json:"hours_per_cycle"`
	CycleDays     int             `json:"cycle_days" validate:"required,min=1,max=366"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency" validate:"required,currency"`
}

type UsageRequest struct {
	DeltaHours decimal.Decimal `json:"delta_hours"`
}

type PlanView struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	MaxUsers      int             `json:"max_users"`
	StorageLimit  *int64          `json:"storage_limit"`
	HoursPerCycle decimal.Decimal `json:"hours_per_cycle"`
	CycleDays     int             `json:"cycle_days"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
}

func NewPlanView(p *types.Plan) PlanView {
	return PlanView{
		ID:            p.ID,
		Name:          p.Name,
		MaxUsers:      p.MaxUsers,
		StorageLimit:  p.StorageLimit,
		HoursPerCycle: p.HoursPerCycle,
		CycleDays:     p.CycleDays,
		Price:         p.Price,
		Currency:      p.Currency,
		CreatedAt:     p.CreatedAt,
	}
}

type CycleView struct {
	ID             string            `json:"id"`
	TenantID       string            `json:"tenant_id"`
	PeriodStart    time.Time         `json:"period_start"`
	PeriodEnd      time.Time         `json:"period_end"`
	HoursAllowed   decimal.Decimal   `json:"hours_allowed"`
	HoursUsed      decimal.Decimal   `json:"hours_used"`
	Status         types.CycleStatus `json:"cycle_status"`
	GraceStartedAt *time.Time        `json:"grace_started_at,omitempty"`
}

func NewCycleView(c *types.BillingCycle) CycleView {
	return CycleView{
		ID:             c.ID,
		TenantID:       c.TenantID,
		PeriodStart:    c.PeriodStart,
		PeriodEnd:      c.PeriodEnd,
		HoursAllowed:   c.HoursAllowed,
		HoursUsed:      c.HoursUsed,
		Status:         c.Status,
		GraceStartedAt: c.GraceStartedAt,
	}
}

type PaymentView struct {
	ID                    string              `json:"id"`
	TenantID              string              `json:"tenant_id"`
	ExternalTransactionID string              `json:"external_transaction_id"`
	Amount                decimal.Decimal     `json:"amount"`
	Currency              string              `json:"currency"`
	Status                types.PaymentStatus `json:"status"`
	FailureReason         *string             `json:"failure_reason"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

func NewPaymentView(p *types.PaymentTransaction) PaymentView {
	return PaymentView{
		ID:                    p.ID,
		TenantID:              p.TenantID,
		ExternalTransactionID: p.ExternalTransactionID,
		Amount:                p.Amount,
		Currency:              p.Currency,
		Status:                p.Status,
		FailureReason:         p.FailureReason,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

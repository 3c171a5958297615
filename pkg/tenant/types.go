// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"strings"
	"time"

	"github.com/canonical/tenant-orchestrator/internal/compute"
	"github.com/canonical/tenant-orchestrator/internal/types"
)

type Config struct {
	HealthCheckAttempts uint
	HealthCheckInterval time.Duration
	// Async runs provisioning in the background and returns the tenant as soon as it is reserved.
	Async                bool
	ProvisioningDeadline time.Duration
	ReservedSubdomains   []string
}

type CreateTenantRequest struct {
	// RequestID deduplicates purchase events. Repeating a request returns the same tenant.
	RequestID string   `json:"request_id" validate:"omitempty,max=128"`
	Subdomain string   `json:"subdomain" validate:"required,subdomain"`
	PlanID    string   `json:"plan_id" validate:"required,uuid"`
	Modules   []string `json:"modules" validate:"omitempty,max=64,dive,module"`
}

type SuspendTenantRequest struct {
	Reason string `json:"reason" validate:"max=512"`
}

type ListFilter struct {
	Statuses []types.TenantStatus
	Page     int64
	Size     int64
}

// TenantView is the json representation returned by the API.
type TenantView struct {
	ID              string             `json:"id"`
	Subdomain       string             `json:"subdomain"`
	Status          types.TenantStatus `json:"status"`
	PlanID          string             `json:"plan_id"`
	MaxUsers        int                `json:"max_users"`
	StorageLimit    *int64             `json:"storage_limit"`
	Modules         []string           `json:"modules"`
	SuspensionCause string             `json:"suspension_cause,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	FailureReason   *string            `json:"failure_reason"`
}

func NewTenantView(t *types.Tenant) TenantView {
	return TenantView{
		ID:              t.ID,
		Subdomain:       t.Subdomain,
		Status:          t.Status,
		PlanID:          t.PlanID,
		MaxUsers:        t.MaxUsers,
		StorageLimit:    t.StorageLimit,
		Modules:         t.Modules,
		SuspensionCause: string(t.SuspensionCause),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		FailureReason:   t.FailureReason,
	}
}

// DatabaseName derives the database of a tenant from its subdomain.
func DatabaseName(subdomain string) string {
	return "tenant_" + strings.ReplaceAll(subdomain, "-", "_")
}

func workload(t *types.Tenant) compute.Workload {
	return compute.Workload{
		TenantID:     t.ID,
		Subdomain:    t.Subdomain,
		DatabaseName: t.DatabaseName,
	}
}

func withStep(steps []types.Step, step types.Step) []types.Step {
	out := make([]types.Step, 0, len(steps)+1)
	for _, s := range steps {
		if s != step {
			out = append(out, s)
		}
	}
	return append(out, step)
}

func withoutStep(steps []types.Step, step types.Step) []types.Step {
	out := make([]types.Step, 0, len(steps))
	for _, s := range steps {
		if s != step {
			out = append(out, s)
		}
	}
	return out
}

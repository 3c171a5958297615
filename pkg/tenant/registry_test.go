// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/tenant-orchestrator/internal/storage"
	"github.com/canonical/tenant-orchestrator/internal/types"
)

type transitionRecord struct {
	from types.TenantStatus
	to   types.TenantStatus
}

// fakeRegistry keeps tenants in memory and enforces the same uniqueness and
// compare-and-set rules as the Postgres registry.
type fakeRegistry struct {
	mu          sync.Mutex
	tenants     map[string]*types.Tenant
	plans       map[string]*types.Plan
	cycles      []*types.BillingCycle
	transitions []transitionRecord
}

var _ StorageInterface = (*fakeRegistry)(nil)

func newFakeRegistry(plans ...*types.Plan) *fakeRegistry {
	r := &fakeRegistry{
		tenants: make(map[string]*types.Tenant),
		plans:   make(map[string]*types.Plan),
	}
	for _, p := range plans {
		r.plans[p.ID] = p
	}
	return r
}

func (r *fakeRegistry) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// clashes reports whether candidate would violate a partial unique index.
func (r *fakeRegistry) clashes(candidate *types.Tenant) bool {
	if !candidate.HoldsNames() {
		return false
	}
	for _, t := range r.tenants {
		if t.ID == candidate.ID || !t.HoldsNames() {
			continue
		}
		if t.Subdomain == candidate.Subdomain || t.DatabaseName == candidate.DatabaseName {
			return true
		}
	}
	return false
}

func (r *fakeRegistry) CreateTenant(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.tenants {
		if existing.RequestID == t.RequestID {
			return nil, fmt.Errorf("request_id: %w", storage.ErrDuplicateKey)
		}
	}

	if _, ok := r.plans[t.PlanID]; !ok {
		return nil, storage.ErrForeignKeyViolation
	}

	created := clone(t)
	created.ID = uuid.NewString()
	created.Status = types.StatusPending
	created.CompletedSteps = []types.Step{}
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt

	if r.clashes(created) {
		return nil, fmt.Errorf("subdomain: %w", storage.ErrDuplicateKey)
	}

	r.tenants[created.ID] = created
	return clone(created), nil
}

func (r *fakeRegistry) GetTenantByID(_ context.Context, id string) (*types.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tenants[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return clone(t), nil
}

func (r *fakeRegistry) GetTenantByRequestID(_ context.Context, requestID string) (*types.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tenants {
		if t.RequestID == requestID {
			return clone(t), nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *fakeRegistry) ListTenants(_ context.Context, filter storage.TenantFilter) ([]*types.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*types.Tenant
	for _, t := range r.tenants {
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, t.Status) {
			continue
		}
		out = append(out, clone(t))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	size := int(filter.Size)
	if size <= 0 {
		size = 100
	}
	start := int(max(filter.Page-1, 0)) * size
	if start >= len(out) {
		return nil, nil
	}

	return out[start:min(start+size, len(out))], nil
}

func (r *fakeRegistry) TransitionTenant(_ context.Context, id string, from, to types.TenantStatus, changes storage.TenantChanges) (*types.Tenant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !from.CanTransitionTo(to) {
		return nil, storage.ErrIllegalTransition
	}

	current, ok := r.tenants[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if current.Status != from {
		return clone(current), storage.ErrStatusMismatch
	}

	next := clone(current)
	next.Status = to
	next.UpdatedAt = time.Now()

	if changes.FailureReason != nil {
		reason := *changes.FailureReason
		next.FailureReason = &reason
	} else if changes.ClearFailureReason {
		next.FailureReason = nil
	}
	if changes.SuspensionCause != nil {
		next.SuspensionCause = *changes.SuspensionCause
	}
	if changes.CompletedSteps != nil {
		next.CompletedSteps = slices.Clone(changes.CompletedSteps)
	}
	if changes.ResetRepairs {
		next.RepairAttempts = 0
		next.AlertedAt = nil
	}

	if r.clashes(next) {
		return nil, storage.ErrDuplicateKey
	}

	r.tenants[id] = next
	r.transitions = append(r.transitions, transitionRecord{from: from, to: to})

	return clone(next), nil
}

func (r *fakeRegistry) UpdateTenantSteps(_ context.Context, id string, status types.TenantStatus, steps []types.Step) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tenants[id]
	if !ok || t.Status != status {
		return storage.ErrStatusMismatch
	}

	t.CompletedSteps = slices.Clone(steps)
	t.UpdatedAt = time.Now()
	return nil
}

func (r *fakeRegistry) SetRepairState(_ context.Context, id string, attempts int, alertedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tenants[id]
	if !ok {
		return storage.ErrNotFound
	}

	t.RepairAttempts = attempts
	t.AlertedAt = alertedAt
	return nil
}

func (r *fakeRegistry) GetPlanByID(_ context.Context, id string) (*types.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.plans[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (r *fakeRegistry) CreateBillingCycle(_ context.Context, c *types.BillingCycle) (*types.BillingCycle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.cycles {
		if existing.TenantID == c.TenantID && existing.Status == types.CycleActive {
			return nil, storage.ErrDuplicateKey
		}
	}

	created := *c
	created.ID = uuid.NewString()
	created.Status = types.CycleActive
	r.cycles = append(r.cycles, &created)

	out := created
	return &out, nil
}

func (r *fakeRegistry) GetActiveCycle(_ context.Context, tenantID string, _ bool) (*types.BillingCycle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.cycles {
		if c.TenantID == tenantID && c.Status == types.CycleActive {
			out := *c
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}

// seed stores t as is, bypassing every check.
func (r *fakeRegistry) seed(t *types.Tenant) *types.Tenant {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := clone(t)
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.DatabaseName == "" {
		s.DatabaseName = DatabaseName(s.Subdomain)
	}
	if s.RequestID == "" {
		s.RequestID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = s.CreatedAt
	}
	if s.CompletedSteps == nil {
		s.CompletedSteps = []types.Step{}
	}

	r.tenants[s.ID] = s
	return clone(s)
}

func (r *fakeRegistry) get(id string) *types.Tenant {
	r.mu.Lock()
	defer r.mu.Unlock()

	return clone(r.tenants[id])
}

// holder returns the tenant currently reserving subdomain, if any.
func (r *fakeRegistry) holder(subdomain string) *types.Tenant {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tenants {
		if t.Subdomain == subdomain && t.HoldsNames() {
			return clone(t)
		}
	}
	return nil
}

func (r *fakeRegistry) history() []transitionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.transitions)
}

func (r *fakeRegistry) activeCycles(tenantID string) []*types.BillingCycle {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*types.BillingCycle
	for _, c := range r.cycles {
		if c.TenantID == tenantID && c.Status == types.CycleActive {
			out = append(out, c)
		}
	}
	return out
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/canonical/tenant-orchestrator/internal/storage"
	"github.com/canonical/tenant-orchestrator/internal/types"
)

// fakeStore keeps billing state in memory with the uniqueness rules of the
// Postgres schema: one active cycle per tenant and one payment per external id.
type fakeStore struct {
	mu       sync.Mutex
	tenants  map[string]*types.Tenant
	plans    map[string]*types.Plan
	cycles   []*types.BillingCycle
	samples  []*types.UsageSample
	payments []*types.PaymentTransaction

	// transactional undoes cycle and payment writes of a failed WithTx block
	transactional bool
	// failValidation is returned once by the next update to validated
	failValidation error
}

var _ StorageInterface = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		tenants: make(map[string]*types.Tenant),
		plans:   make(map[string]*types.Plan),
	}
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if !f.transactional {
		return fn(ctx)
	}

	cycles, payments := f.checkpoint()
	err := fn(ctx)
	if err != nil {
		f.mu.Lock()
		f.cycles, f.payments = cycles, payments
		f.mu.Unlock()
	}
	return err
}

func (f *fakeStore) checkpoint() ([]*types.BillingCycle, []*types.PaymentTransaction) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cycles := make([]*types.BillingCycle, 0, len(f.cycles))
	for _, c := range f.cycles {
		cp := *c
		cycles = append(cycles, &cp)
	}
	payments := make([]*types.PaymentTransaction, 0, len(f.payments))
	for _, p := range f.payments {
		cp := *p
		payments = append(payments, &cp)
	}
	return cycles, payments
}

func (f *fakeStore) GetTenantByID(_ context.Context, id string) (*types.Tenant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.tenants[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	c := *t
	return &c, nil
}

func (f *fakeStore) CreatePlan(_ context.Context, p *types.Plan) (*types.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.plans {
		if existing.Name == p.Name {
			return nil, storage.ErrDuplicateKey
		}
	}

	created := *p
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	f.plans[created.ID] = &created

	out := created
	return &out, nil
}

func (f *fakeStore) GetPlanByID(_ context.Context, id string) (*types.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.plans[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (f *fakeStore) ListPlans(_ context.Context) ([]*types.Plan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*types.Plan
	for _, p := range f.plans {
		c := *p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStore) CreateBillingCycle(_ context.Context, c *types.BillingCycle) (*types.BillingCycle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.cycles {
		if existing.TenantID == c.TenantID && existing.Status == types.CycleActive {
			return nil, storage.ErrDuplicateKey
		}
		if existing.TenantID == c.TenantID && c.PeriodStart.Before(existing.PeriodEnd) && existing.PeriodStart.Before(c.PeriodEnd) {
			return nil, storage.ErrOverlap
		}
	}

	created := *c
	created.ID = uuid.NewString()
	created.Status = types.CycleActive
	f.cycles = append(f.cycles, &created)

	out := created
	return &out, nil
}

func (f *fakeStore) GetActiveCycle(_ context.Context, tenantID string, _ bool) (*types.BillingCycle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.cycles {
		if c.TenantID == tenantID && c.Status == types.CycleActive {
			out := *c
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) ListCycles(_ context.Context, tenantID string) ([]*types.BillingCycle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*types.BillingCycle
	for _, c := range f.cycles {
		if c.TenantID == tenantID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeriodStart.Before(out[j].PeriodStart) })
	return out, nil
}

func (f *fakeStore) cycle(id string) *types.BillingCycle {
	for _, c := range f.cycles {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (f *fakeStore) IncrementCycleUsage(_ context.Context, cycleID string, delta decimal.Decimal) (*types.BillingCycle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := f.cycle(cycleID)
	if c == nil || c.Status != types.CycleActive {
		return nil, storage.ErrStatusMismatch
	}

	c.HoursUsed = c.HoursUsed.Add(delta)
	out := *c
	return &out, nil
}

func (f *fakeStore) CloseCycle(_ context.Context, cycleID string, status types.CycleStatus, periodEnd *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := f.cycle(cycleID)
	if c == nil || c.Status != types.CycleActive {
		return storage.ErrStatusMismatch
	}

	c.Status = status
	if periodEnd != nil {
		c.PeriodEnd = *periodEnd
	}
	return nil
}

func (f *fakeStore) StartCycleGrace(_ context.Context, cycleID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := f.cycle(cycleID)
	if c == nil || c.Status != types.CycleActive || c.GraceStartedAt != nil {
		return storage.ErrStatusMismatch
	}

	c.GraceStartedAt = &at
	return nil
}

func (f *fakeStore) ListTenantIDsWithActiveCycle(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []string
	for _, c := range f.cycles {
		t := f.tenants[c.TenantID]
		if c.Status != types.CycleActive || t == nil {
			continue
		}
		if t.Status == types.StatusActive || t.Status == types.StatusSuspended {
			ids = append(ids, t.ID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (f *fakeStore) AppendUsageSample(_ context.Context, u *types.UsageSample) (*types.UsageSample, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := *u
	s.ID = uuid.NewString()
	s.RecordedAt = time.Now()
	f.samples = append(f.samples, &s)

	out := s
	return &out, nil
}

func (f *fakeStore) SumCycleUsage(_ context.Context, cycleID string) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := decimal.Zero
	for _, s := range f.samples {
		if s.BillingCycleID == cycleID {
			total = total.Add(s.DeltaHours)
		}
	}
	return total, nil
}

func (f *fakeStore) SetCycleUsage(_ context.Context, cycleID string, hours decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	c := f.cycle(cycleID)
	if c == nil {
		return storage.ErrNotFound
	}
	c.HoursUsed = hours
	return nil
}

func (f *fakeStore) CreatePayment(_ context.Context, p *types.PaymentTransaction) (*types.PaymentTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.payments {
		if existing.ExternalTransactionID == p.ExternalTransactionID {
			return nil, storage.ErrDuplicateKey
		}
	}

	created := *p
	created.ID = uuid.NewString()
	created.Status = types.PaymentPending
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.payments = append(f.payments, &created)

	out := created
	return &out, nil
}

func (f *fakeStore) GetPaymentByExternalID(_ context.Context, externalID string) (*types.PaymentTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.payments {
		if p.ExternalTransactionID == externalID {
			out := *p
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeStore) UpdatePaymentStatus(_ context.Context, id string, status types.PaymentStatus, reason *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if status == types.PaymentValidated && f.failValidation != nil {
		err := f.failValidation
		f.failValidation = nil
		return err
	}

	for _, p := range f.payments {
		if p.ID == id {
			p.Status = status
			p.FailureReason = reason
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return storage.ErrNotFound
}

func (f *fakeStore) addTenant(t *types.Tenant) *types.Tenant {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	f.tenants[t.ID] = t
	return t
}

func (f *fakeStore) addPlan(p *types.Plan) *types.Plan {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.plans[p.ID] = p
	return p
}

func (f *fakeStore) addCycle(c *types.BillingCycle) *types.BillingCycle {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = types.CycleActive
	}
	f.cycles = append(f.cycles, c)
	return c
}

// addSample records usage without touching the running total of the cycle.
func (f *fakeStore) addSample(tenantID, cycleID string, hours decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.samples = append(f.samples, &types.UsageSample{
		ID:             uuid.NewString(),
		TenantID:       tenantID,
		BillingCycleID: cycleID,
		DeltaHours:     hours,
		RecordedAt:     time.Now(),
	})
}

func (f *fakeStore) setStatus(tenantID string, status types.TenantStatus, cause types.SuspensionCause) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tenants[tenantID].Status = status
	f.tenants[tenantID].SuspensionCause = cause
}

func (f *fakeStore) snapshot(tenantID string) (cycles []types.BillingCycle, samples int, payments []types.PaymentTransaction) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.cycles {
		if c.TenantID == tenantID {
			cycles = append(cycles, *c)
		}
	}
	for _, s := range f.samples {
		if s.TenantID == tenantID {
			samples++
		}
	}
	for _, p := range f.payments {
		if p.TenantID == tenantID {
			payments = append(payments, *p)
		}
	}
	sort.Slice(cycles, func(i, j int) bool { return cycles[i].PeriodStart.Before(cycles[j].PeriodStart) })
	return cycles, samples, payments
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"slices"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-orchestrator/internal/compute"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/notification"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/internal/types"
)

func newTestReconciler(h *harness, maxRepairAttempts int) *Reconciler {
	logger := logging.NewNoopLogger()
	return NewReconciler(h.service, 4, maxRepairAttempts, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func (h *harness) countEvents(eventType notification.EventType) int {
	n := 0
	for _, e := range h.eventTypes() {
		if e == eventType {
			n++
		}
	}
	return n
}

func TestReconciler_ActiveTenant(t *testing.T) {
	testCases := []struct {
		name             string
		setupMocks       func(*harness)
		expectedAttempts int
	}{
		{
			name: "in sync",
			setupMocks: func(h *harness) {
				h.instance.EXPECT().DatabaseExists(gomock.Any(), "tenant_acme").Return(true, nil)
				h.runtime.EXPECT().HealthCheck(gomock.Any(), gomock.Any()).Return(compute.Healthy, nil)
				h.routing.EXPECT().RouteExists(gomock.Any(), "acme").Return(true, nil)
			},
			expectedAttempts: 0,
		},
		{
			name: "route missing is published again",
			setupMocks: func(h *harness) {
				h.instance.EXPECT().DatabaseExists(gomock.Any(), "tenant_acme").Return(true, nil)
				h.runtime.EXPECT().HealthCheck(gomock.Any(), gomock.Any()).Return(compute.Healthy, nil)
				h.routing.EXPECT().RouteExists(gomock.Any(), "acme").Return(false, nil)
				h.routing.EXPECT().PublishRoute(gomock.Any(), "acme", testBackend).Return(nil)
			},
			expectedAttempts: 0,
		},
		{
			name: "unhealthy workload gets capacity again",
			setupMocks: func(h *harness) {
				h.instance.EXPECT().DatabaseExists(gomock.Any(), "tenant_acme").Return(true, nil)
				h.runtime.EXPECT().HealthCheck(gomock.Any(), gomock.Any()).Return(compute.Unhealthy, nil)
				h.runtime.EXPECT().EnsureCapacity(gomock.Any(), gomock.Any()).Return(nil)
				h.routing.EXPECT().RouteExists(gomock.Any(), "acme").Return(true, nil)
			},
			expectedAttempts: 1,
		},
		{
			name: "database missing cannot be repaired",
			setupMocks: func(h *harness) {
				h.instance.EXPECT().DatabaseExists(gomock.Any(), "tenant_acme").Return(false, nil)
			},
			expectedAttempts: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, testConfig())
			tenant := h.seedActive("acme")
			tc.setupMocks(h)

			if err := newTestReconciler(h, 3).Run(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := h.registry.get(tenant.ID)
			if got.Status != types.StatusActive {
				t.Errorf("expected tenant to stay ACTIVE, got %s", got.Status)
			}
			if got.RepairAttempts != tc.expectedAttempts {
				t.Errorf("expected %d repair attempts, got %d", tc.expectedAttempts, got.RepairAttempts)
			}
		})
	}
}

func TestReconciler_AlertsOnce(t *testing.T) {
	h := newHarness(t, testConfig())
	tenant := h.seedActive("acme")

	h.instance.EXPECT().DatabaseExists(gomock.Any(), "tenant_acme").Return(false, nil).Times(3)

	r := newTestReconciler(h, 2)
	for i := 0; i < 3; i++ {
		if err := r.Run(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got := h.registry.get(tenant.ID)
	if got.RepairAttempts != 3 {
		t.Errorf("expected 3 repair attempts, got %d", got.RepairAttempts)
	}
	if got.AlertedAt == nil {
		t.Error("expected the alert time to be stored")
	}
	if n := h.countEvents(notification.EventRepairAlert); n != 1 {
		t.Errorf("expected a single alert, got %d", n)
	}

	// a successful pass clears the repair state
	h.instance.EXPECT().DatabaseExists(gomock.Any(), "tenant_acme").Return(true, nil)
	h.runtime.EXPECT().HealthCheck(gomock.Any(), gomock.Any()).Return(compute.Healthy, nil)
	h.routing.EXPECT().RouteExists(gomock.Any(), "acme").Return(true, nil)

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got = h.registry.get(tenant.ID)
	if got.RepairAttempts != 0 || got.AlertedAt != nil {
		t.Errorf("expected repair state to be reset, got %d %v", got.RepairAttempts, got.AlertedAt)
	}
}

func TestReconciler_SuspendedTenantRoutePublished(t *testing.T) {
	h := newHarness(t, testConfig())
	tenant := h.registry.seed(&types.Tenant{
		Subdomain:       "acme",
		PlanID:          testPlanID,
		Status:          types.StatusSuspended,
		SuspensionCause: types.SuspensionBilling,
		CompletedSteps:  []types.Step{types.StepCapacity, types.StepDatabase, types.StepUserLimit, types.StepHealth},
	})

	h.routing.EXPECT().RouteExists(gomock.Any(), "acme").Return(true, nil)
	h.routing.EXPECT().RetractRoute(gomock.Any(), "acme").Return(nil)

	if err := newTestReconciler(h, 3).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := h.registry.get(tenant.ID); got.Status != types.StatusSuspended {
		t.Errorf("expected SUSPENDED, got %s", got.Status)
	}
}

func TestReconciler_StuckProvisioning(t *testing.T) {
	stale := time.Now().Add(-2 * time.Hour)

	testCases := []struct {
		name           string
		steps          []types.Step
		updatedAt      time.Time
		setupMocks     func(*harness)
		expectedStatus types.TenantStatus
	}{
		{
			name:           "recent run is left alone",
			steps:          []types.Step{types.StepCapacity},
			updatedAt:      time.Now(),
			setupMocks:     func(*harness) {},
			expectedStatus: types.StatusCreating,
		},
		{
			name:      "no database is rolled back",
			steps:     []types.Step{types.StepCapacity},
			updatedAt: stale,
			setupMocks: func(h *harness) {
				h.routing.EXPECT().RetractRoute(gomock.Any(), "acme").Return(nil)
				h.instance.EXPECT().DropDatabase(gomock.Any(), "tenant_acme").Return(nil)
			},
			expectedStatus: types.StatusFailed,
		},
		{
			name:      "acknowledged database is completed",
			steps:     []types.Step{types.StepCapacity, types.StepDatabase},
			updatedAt: stale,
			setupMocks: func(h *harness) {
				gomock.InOrder(
					h.instance.EXPECT().SetUserLimit(gomock.Any(), "tenant_acme", 5).Return(nil),
					h.runtime.EXPECT().HealthCheck(gomock.Any(), gomock.Any()).Return(compute.Healthy, nil),
					h.routing.EXPECT().PublishRoute(gomock.Any(), "acme", testBackend).Return(nil),
				)
			},
			expectedStatus: types.StatusActive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t, testConfig())
			tenant := h.registry.seed(&types.Tenant{
				Subdomain:      "acme",
				PlanID:         testPlanID,
				MaxUsers:       testPlan.MaxUsers,
				Status:         types.StatusCreating,
				CompletedSteps: tc.steps,
				CreatedAt:      tc.updatedAt,
				UpdatedAt:      tc.updatedAt,
			})
			tc.setupMocks(h)

			if err := newTestReconciler(h, 3).Run(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got := h.registry.get(tenant.ID)
			if got.Status != tc.expectedStatus {
				t.Fatalf("expected %s, got %s", tc.expectedStatus, got.Status)
			}
			if got.Status == types.StatusFailed && (got.FailureReason == nil || *got.FailureReason != reasonDeadline) {
				t.Errorf("unexpected failure reason %v", got.FailureReason)
			}
		})
	}
}

func TestReconciler_ResumesTeardown(t *testing.T) {
	h := newHarness(t, testConfig())
	tenant := h.registry.seed(&types.Tenant{
		Subdomain:      "acme",
		PlanID:         testPlanID,
		Status:         types.StatusDeleting,
		CompletedSteps: []types.Step{types.StepCapacity, types.StepDatabase},
	})

	gomock.InOrder(
		h.instance.EXPECT().DropDatabase(gomock.Any(), "tenant_acme").Return(nil),
		h.runtime.EXPECT().Teardown(gomock.Any(), gomock.Any()).Return(nil),
	)

	if err := newTestReconciler(h, 3).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := h.registry.get(tenant.ID)
	if got.Status != types.StatusDeleted {
		t.Errorf("expected DELETED, got %s", got.Status)
	}
	if !slices.Contains(h.eventTypes(), notification.EventTenantDeleted) {
		t.Errorf("expected a deletion notification, got %v", h.eventTypes())
	}
}

func TestReconciler_SkipsBusyAndFailedTenants(t *testing.T) {
	h := newHarness(t, testConfig())

	busy := h.seedActive("acme")
	h.registry.seed(&types.Tenant{
		Subdomain:      "globex",
		PlanID:         testPlanID,
		Status:         types.StatusFailed,
		CompletedSteps: []types.Step{types.StepCapacity},
	})

	unlock, err := h.locker.Lock(context.Background(), LockKey(busy.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer unlock()

	// no adapter expectations: any probe fails the test
	if err := newTestReconciler(h, 3).Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

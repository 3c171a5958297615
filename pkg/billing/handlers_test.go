// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
	"github.com/canonical/tenant-orchestrator/internal/http/types"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	billingTypes "github.com/canonical/tenant-orchestrator/internal/types"
)

const testTenantID = "0192a3b4-5555-7000-8000-000000000005"

func newTestRouter(t *testing.T) (*chi.Mux, *MockEngineInterface) {
	ctrl := gomock.NewController(t)

	mockEngine := NewMockEngineInterface(ctrl)
	logger := logging.NewNoopLogger()

	mux := chi.NewMux()
	NewAPI(mockEngine, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)

	return mux, mockEngine
}

func TestAPI_Endpoints(t *testing.T) {
	cycle := &billingTypes.BillingCycle{
		ID:           "cycle-1",
		TenantID:     testTenantID,
		HoursAllowed: decimal.NewFromInt(10),
		HoursUsed:    decimal.NewFromInt(4),
		Status:       billingTypes.CycleActive,
	}

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setupMocks func(*MockEngineInterface)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "create plan",
			method: http.MethodPost,
			path:   "/api/v0/plans",
			body:   `{"name":"starter","max_users":5,"hours_per_cycle":"720","cycle_days":30,"price":"29.00","currency":"EUR"}`,
			setupMocks: func(mockEngine *MockEngineInterface) {
				mockEngine.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req CreatePlanRequest) (*billingTypes.Plan, error) {
						if !req.Price.Equal(decimal.RequireFromString("29")) || req.StorageLimit != nil {
							t.Errorf("unexpected request %+v", req)
						}
						return &billingTypes.Plan{ID: testPlanID, Name: req.Name, Price: req.Price, Currency: req.Currency}, nil
					},
				)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"storage_limit":null`,
		},
		{
			name:       "create plan with malformed body",
			method:     http.MethodPost,
			path:       "/api/v0/plans",
			body:       `{"name":`,
			setupMocks: func(*MockEngineInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "list plans",
			method: http.MethodGet,
			path:   "/api/v0/plans",
			setupMocks: func(mockEngine *MockEngineInterface) {
				mockEngine.EXPECT().ListPlans(gomock.Any()).Return([]*billingTypes.Plan{{ID: testPlanID, Name: "starter"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"starter"`,
		},
		{
			name:   "missing plan",
			method: http.MethodGet,
			path:   "/api/v0/plans/" + testPlanID,
			setupMocks: func(mockEngine *MockEngineInterface) {
				mockEngine.EXPECT().GetPlan(gomock.Any(), testPlanID).Return(nil, apperrors.NewNotFoundError("plan", testPlanID))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "record usage",
			method: http.MethodPost,
			path:   "/api/v0/tenants/" + testTenantID + "/usage",
			body:   `{"delta_hours":"1.5"}`,
			setupMocks: func(mockEngine *MockEngineInterface) {
				mockEngine.EXPECT().RecordUsage(gomock.Any(), testTenantID, decimal.RequireFromString("1.5")).Return(cycle, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"cycle_status":"active"`,
		},
		{
			name:   "usage exhausts the allowance",
			method: http.MethodPost,
			path:   "/api/v0/tenants/" + testTenantID + "/usage",
			body:   `{"delta_hours":"6"}`,
			setupMocks: func(mockEngine *MockEngineInterface) {
				mockEngine.EXPECT().RecordUsage(gomock.Any(), testTenantID, gomock.Any()).
					Return(cycle, &apperrors.ResourceExhaustedError{TenantID: testTenantID, Resource: "hours", Limit: "10"})
			},
			wantStatus: http.StatusPaymentRequired,
		},
		{
			name:   "usage without active cycle",
			method: http.MethodPost,
			path:   "/api/v0/tenants/" + testTenantID + "/usage",
			body:   `{"delta_hours":"1"}`,
			setupMocks: func(mockEngine *MockEngineInterface) {
				mockEngine.EXPECT().RecordUsage(gomock.Any(), testTenantID, gomock.Any()).
					Return(nil, apperrors.NewNotFoundError("active billing cycle", testTenantID))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "usage for a malformed tenant id",
			method:     http.MethodPost,
			path:       "/api/v0/tenants/acme/usage",
			body:       `{"delta_hours":"1"}`,
			setupMocks: func(*MockEngineInterface) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `must be a UUID`,
		},
		{
			name:   "list cycles",
			method: http.MethodGet,
			path:   "/api/v0/tenants/" + testTenantID + "/cycles",
			setupMocks: func(mockEngine *MockEngineInterface) {
				mockEngine.EXPECT().ListCycles(gomock.Any(), testTenantID).Return([]*billingTypes.BillingCycle{cycle}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"cycle-1"`,
		},
		{
			name:   "payment lookup",
			method: http.MethodGet,
			path:   "/api/v0/billing/payments/pay_1",
			setupMocks: func(mockEngine *MockEngineInterface) {
				mockEngine.EXPECT().GetPayment(gomock.Any(), "pay_1").Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockEngine := newTestRouter(t)
			tt.setupMocks(mockEngine)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}

			if tt.wantStatus >= http.StatusBadRequest {
				var body types.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body.Status != tt.wantStatus {
					t.Errorf("expected an error body with status %d, got %+v (%v)", tt.wantStatus, body, err)
				}
				return
			}

			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("expected body to contain %s, got %s", tt.wantBody, rec.Body.String())
			}
		})
	}
}

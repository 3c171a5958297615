// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-orchestrator/internal/http/types"
	"github.com/canonical/tenant-orchestrator/internal/identity"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

type API struct {
	engine EngineInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/plans", a.createPlan)
	mux.Get("/api/v0/plans", a.listPlans)
	mux.Get("/api/v0/plans/{id}", a.getPlan)
	mux.Post("/api/v0/tenants/{id}/usage", a.recordUsage)
	mux.Get("/api/v0/tenants/{id}/cycles", a.listCycles)
	mux.Get("/api/v0/billing/payments/{externalID}", a.getPayment)
}

func (a *API) createPlan(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteBadRequest(w, err)
		return
	}

	plan, err := a.engine.CreatePlan(r.Context(), req)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(identity.Actor(r.Context()), "create_plan", plan.ID)

	types.WriteJSON(w, http.StatusCreated, NewPlanView(plan))
}

func (a *API) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := a.engine.ListPlans(r.Context())
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	views := make([]PlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, NewPlanView(p))
	}

	types.WriteJSON(w, http.StatusOK, types.ListResponse{Data: views})
}

func (a *API) getPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := types.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	plan, err := a.engine.GetPlan(r.Context(), id)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, NewPlanView(plan))
}

func (a *API) recordUsage(w http.ResponseWriter, r *http.Request) {
	id, ok := types.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	var req UsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteBadRequest(w, err)
		return
	}

	// an exhausted allowance is reported with 402 though the sample is recorded
	cycle, err := a.engine.RecordUsage(r.Context(), id, req.DeltaHours)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, NewCycleView(cycle))
}

func (a *API) listCycles(w http.ResponseWriter, r *http.Request) {
	id, ok := types.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	cycles, err := a.engine.ListCycles(r.Context(), id)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	views := make([]CycleView, 0, len(cycles))
	for _, c := range cycles {
		views = append(views, NewCycleView(c))
	}

	types.WriteJSON(w, http.StatusOK, types.ListResponse{Data: views})
}

func (a *API) getPayment(w http.ResponseWriter, r *http.Request) {
	tx, err := a.engine.GetPayment(r.Context(), chi.URLParam(r, "externalID"))
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, NewPaymentView(tx))
}

func NewAPI(engine EngineInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.engine = engine

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-orchestrator/internal/http/types"
	"github.com/canonical/tenant-orchestrator/internal/identity"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	tenantTypes "github.com/canonical/tenant-orchestrator/internal/types"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/tenants", a.createTenant)
	mux.Get("/api/v0/tenants", a.listTenants)
	mux.Get("/api/v0/tenants/{id}", a.getTenant)
	mux.Delete("/api/v0/tenants/{id}", a.deleteTenant)
	mux.Post("/api/v0/tenants/{id}/suspend", a.suspendTenant)
	mux.Post("/api/v0/tenants/{id}/resume", a.resumeTenant)
	mux.Post("/api/v0/tenants/{id}/retry", a.retryTenant)
	mux.Post("/api/v0/tenants/{id}/cancel", a.cancelProvisioning)
}

func (a *API) createTenant(w http.ResponseWriter, r *http.Request) {
	var req CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteBadRequest(w, err)
		return
	}

	t, err := a.service.CreateTenant(r.Context(), req)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	a.logger.Security().AdminAction(identity.Actor(r.Context()), "create_tenant", t.ID)

	status := http.StatusCreated
	if t.Status == tenantTypes.StatusPending || t.Status == tenantTypes.StatusCreating {
		status = http.StatusAccepted
	}

	types.WriteJSON(w, status, NewTenantView(t))
}

func (a *API) listTenants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := ListFilter{}
	for _, raw := range q["status"] {
		for _, st := range strings.Split(raw, ",") {
			if st != "" {
				filter.Statuses = append(filter.Statuses, tenantTypes.TenantStatus(strings.ToUpper(st)))
			}
		}
	}

	var err error
	if filter.Page, err = intParam(q.Get("page")); err != nil {
		types.WriteBadRequest(w, err)
		return
	}
	if filter.Size, err = intParam(q.Get("size")); err != nil {
		types.WriteBadRequest(w, err)
		return
	}

	tenants, err := a.service.ListTenants(r.Context(), filter)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	views := make([]TenantView, 0, len(tenants))
	for _, t := range tenants {
		views = append(views, NewTenantView(t))
	}

	types.WriteJSON(w, http.StatusOK, types.ListResponse{
		Data: views,
		Meta: types.Pagination{Page: filter.Page, Size: filter.Size},
	})
}

func (a *API) getTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := types.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	t, err := a.service.GetTenant(r.Context(), id)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, NewTenantView(t))
}

func (a *API) deleteTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := types.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	a.logger.Security().AdminAction(identity.Actor(r.Context()), "delete_tenant", id)

	t, err := a.service.DeleteTenant(r.Context(), id)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, NewTenantView(t))
}

func (a *API) suspendTenant(w http.ResponseWriter, r *http.Request) {
	var req SuspendTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		types.WriteBadRequest(w, err)
		return
	}

	id, ok := types.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	a.logger.Security().AdminAction(identity.Actor(r.Context()), "suspend_tenant", id)

	t, err := a.service.SuspendTenant(r.Context(), id, tenantTypes.SuspensionOperator, req.Reason)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, NewTenantView(t))
}

func (a *API) resumeTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := types.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	a.logger.Security().AdminAction(identity.Actor(r.Context()), "resume_tenant", id)

	t, err := a.service.ResumeTenant(r.Context(), id)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, NewTenantView(t))
}

func (a *API) retryTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := types.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	a.logger.Security().AdminAction(identity.Actor(r.Context()), "retry_tenant", id)

	t, err := a.service.RetryTenant(r.Context(), id)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusAccepted, NewTenantView(t))
}

func (a *API) cancelProvisioning(w http.ResponseWriter, r *http.Request) {
	id, ok := types.UUIDParam(w, r, "id")
	if !ok {
		return
	}

	a.logger.Security().AdminAction(identity.Actor(r.Context()), "cancel_provisioning", id)

	t, err := a.service.CancelProvisioning(r.Context(), id)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, NewTenantView(t))
}

func intParam(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

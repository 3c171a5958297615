// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/tenant-orchestrator/internal/http/types"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	tenantTypes "github.com/canonical/tenant-orchestrator/internal/types"
	"github.com/canonical/tenant-orchestrator/pkg/billing"
	"github.com/canonical/tenant-orchestrator/pkg/tenant"
)

type API struct {
	service      ServiceInterface
	authenticate func(http.Handler) http.Handler

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	r := mux.With(a.authenticate)

	r.Post("/api/v0/webhooks/purchase", a.purchase)
	r.Post("/api/v0/billing/webhook", a.payment)
}

func (a *API) purchase(w http.ResponseWriter, r *http.Request) {
	var event PurchaseEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		a.logger.Errorf("failed to decode purchase event: %v", err)
		types.WriteBadRequest(w, err)
		return
	}

	t, err := a.service.HandlePurchase(r.Context(), event)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	status := http.StatusOK
	if t.Status == tenantTypes.StatusPending || t.Status == tenantTypes.StatusCreating {
		status = http.StatusAccepted
	}

	types.WriteJSON(w, status, tenant.NewTenantView(t))
}

func (a *API) payment(w http.ResponseWriter, r *http.Request) {
	var p billing.Payment
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		a.logger.Errorf("failed to decode payment notification: %v", err)
		types.WriteBadRequest(w, err)
		return
	}

	tx, err := a.service.HandlePayment(r.Context(), p)
	if err != nil {
		types.WriteError(w, err, a.logger)
		return
	}

	types.WriteJSON(w, http.StatusOK, billing.NewPaymentView(tx))
}

// NewAPI serves the inbound webhooks. authenticate guards every route; a nil
// middleware leaves them open.
func NewAPI(service ServiceInterface, authenticate func(http.Handler) http.Handler, logger logging.LoggerInterface) *API {
	if authenticate == nil {
		authenticate = func(next http.Handler) http.Handler { return next }
	}

	return &API{
		service:      service,
		authenticate: authenticate,
		logger:       logger,
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
)

// UUIDParam returns the path parameter name in canonical form. When it is not
// a UUID a 400 response is written and ok is false.
func UUIDParam(w http.ResponseWriter, r *http.Request, name string) (id string, ok bool) {
	parsed, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		status := http.StatusBadRequest
		WriteJSON(w, status, ErrorResponse{Status: status, Message: apperrors.NewValidationError(name, "must be a UUID").Error()})
		return "", false
	}

	return parsed.String(), true
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
	"github.com/canonical/tenant-orchestrator/internal/logging"
)

// ErrorResponse is the json body of every failed request, matching the
// Admin UI standard error payload.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ListResponse wraps collections with the requested page.
type ListResponse struct {
	Data interface{} `json:"data"`
	Meta Pagination  `json:"_meta"`
}

type Pagination struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

// WriteJSON encodes body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

// WriteError maps err onto a status code and writes it as an ErrorResponse.
// Unexpected errors are logged and their message is not exposed.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	status := apperrors.HTTPStatus(err)
	message := err.Error()

	if status == http.StatusInternalServerError && !isKnown(err) {
		logger.Errorf("unexpected error: %v", err)
		message = http.StatusText(status)
	}

	WriteJSON(w, status, ErrorResponse{Status: status, Message: message})
}

// WriteBadRequest reports a body that could not be decoded.
func WriteBadRequest(w http.ResponseWriter, err error) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body: " + err.Error()})
}

func isKnown(err error) bool {
	var consistency *apperrors.ConsistencyError
	return errors.As(err, &consistency)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apperrors holds the error kinds surfaced by the orchestrator and
// the billing engine. Callers match them with errors.As.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports malformed input. It is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// ConflictError reports a duplicate subdomain, database name or transaction id.
type ConflictError struct {
	Resource string
	Key      string
	Err      error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Resource, e.Key)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// ExternalServiceError reports a failed or timed out adapter call.
type ExternalServiceError struct {
	Service   string
	Operation string
	Retryable bool
	Err       error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s.%s failed: %v", e.Service, e.Operation, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// ResourceExhaustedError reports a plan limit being reached.
type ResourceExhaustedError struct {
	TenantID string
	Resource string
	Limit    string
}

func (e *ResourceExhaustedError) Error() string {
	return fmt.Sprintf("tenant %s exhausted %s (limit %s)", e.TenantID, e.Resource, e.Limit)
}

// ConsistencyError reports stored state diverging from the expected or actual state.
type ConsistencyError struct {
	TenantID string
	Expected string
	Actual   string
	Err      error
}

func (e *ConsistencyError) Error() string {
	msg := fmt.Sprintf("tenant %s: expected %s, found %s", e.TenantID, e.Expected, e.Actual)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConsistencyError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a missing tenant, plan, cycle or transaction.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

func NewValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(resource, key string, err error) error {
	return &ConflictError{Resource: resource, Key: key, Err: err}
}

func NewExternalServiceError(service, operation string, retryable bool, err error) error {
	return &ExternalServiceError{Service: service, Operation: operation, Retryable: retryable, Err: err}
}

func NewNotFoundError(resource, key string) error {
	return &NotFoundError{Resource: resource, Key: key}
}

// IsRetryable reports whether err is an ExternalServiceError worth retrying.
func IsRetryable(err error) bool {
	var e *ExternalServiceError
	if errors.As(err, &e) {
		return e.Retryable
	}
	return false
}

// HTTPStatus maps an error kind onto a response status code.
func HTTPStatus(err error) int {
	var (
		validation *ValidationError
		conflict   *ConflictError
		external   *ExternalServiceError
		exhausted  *ResourceExhaustedError
		notFound   *NotFoundError
		consistent *ConsistencyError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &exhausted):
		return http.StatusPaymentRequired
	case errors.As(err, &external):
		return http.StatusBadGateway
	case errors.As(err, &consistent):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

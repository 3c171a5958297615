// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTenantActive    EventType = "tenant.active"
	EventTenantFailed    EventType = "tenant.failed"
	EventTenantSuspended EventType = "tenant.suspended"
	EventTenantResumed   EventType = "tenant.resumed"
	EventTenantDeleted   EventType = "tenant.deleted"
	EventGraceWarning    EventType = "billing.grace_warning"
	EventPaymentApplied  EventType = "billing.payment_applied"
	EventPaymentFailed   EventType = "billing.payment_failed"
	EventRepairAlert     EventType = "reconcile.alert"
)

type Event struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	TenantID   string            `json:"tenant_id"`
	OccurredAt time.Time         `json:"occurred_at"`
	Data       map[string]string `json:"data,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(t EventType, tenantID string, data map[string]string) Event {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return Event{
		ID:         id.String(),
		Type:       t,
		TenantID:   tenantID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

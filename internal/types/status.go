// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"slices"
)

type TenantStatus string

const (
	StatusPending   TenantStatus = "PENDING"
	StatusCreating  TenantStatus = "CREATING"
	StatusActive    TenantStatus = "ACTIVE"
	StatusSuspended TenantStatus = "SUSPENDED"
	StatusFailed    TenantStatus = "FAILED"
	StatusDeleting  TenantStatus = "DELETING"
	StatusDeleted   TenantStatus = "DELETED"
)

var transitions = map[TenantStatus][]TenantStatus{
	StatusPending:   {StatusCreating},
	StatusCreating:  {StatusActive, StatusFailed},
	StatusActive:    {StatusSuspended, StatusDeleting},
	StatusSuspended: {StatusActive, StatusDeleting},
	StatusFailed:    {StatusCreating, StatusDeleting},
	StatusDeleting:  {StatusDeleted},
	StatusDeleted:   {},
}

func (s TenantStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether next is a legal edge out of s.
func (s TenantStatus) CanTransitionTo(next TenantStatus) bool {
	return slices.Contains(transitions[s], next)
}

// IsTerminal reports whether no further transition can leave s.
func (s TenantStatus) IsTerminal() bool {
	return s == StatusDeleted
}

// NonTerminalStatuses lists every status the reconciler inspects.
func NonTerminalStatuses() []TenantStatus {
	return []TenantStatus{StatusPending, StatusCreating, StatusActive, StatusSuspended, StatusFailed, StatusDeleting}
}

// Step is a provisioning step acknowledged by an adapter.
type Step string

const (
	StepCapacity  Step = "capacity"
	StepDatabase  Step = "database"
	StepUserLimit Step = "user_limit"
	StepHealth    Step = "health"
	StepRoute     Step = "route"
)

// ProvisioningSteps is the creation order.
var ProvisioningSteps = []Step{StepCapacity, StepDatabase, StepUserLimit, StepHealth, StepRoute}

type SuspensionCause string

const (
	SuspensionNone     SuspensionCause = ""
	SuspensionBilling  SuspensionCause = "billing"
	SuspensionOperator SuspensionCause = "operator"
)

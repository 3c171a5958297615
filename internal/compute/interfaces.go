// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package compute

import "context"

type RuntimeInterface interface {
	EnsureCapacity(ctx context.Context, w Workload) error
	HealthCheck(ctx context.Context, w Workload) (HealthStatus, error)
	Teardown(ctx context.Context, w Workload) error
	Backend(w Workload) string
}

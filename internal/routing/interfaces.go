// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import "context"

type RegistrarInterface interface {
	PublishRoute(ctx context.Context, subdomain, backend string) error
	RetractRoute(ctx context.Context, subdomain string) error
	RouteExists(ctx context.Context, subdomain string) (bool, error)
}

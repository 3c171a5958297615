// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package instance

import "context"

type ClientInterface interface {
	CreateDatabase(ctx context.Context, name string, modules []string) error
	DropDatabase(ctx context.Context, name string) error
	SetUserLimit(ctx context.Context, name string, maxUsers int) error
	DatabaseExists(ctx context.Context, name string) (bool, error)
}

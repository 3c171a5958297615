// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import "context"

type DispatcherInterface interface {
	Dispatch(ctx context.Context, e Event) error
}

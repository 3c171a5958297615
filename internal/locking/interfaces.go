// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import "context"

// Unlock releases a held lock. It is safe to call more than once.
type Unlock func()

type LockerInterface interface {
	Lock(ctx context.Context, key string) (Unlock, error)
	TryLock(ctx context.Context, key string) (Unlock, bool, error)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import (
	"context"
	"slices"
)

type heldKeysCtxKey struct{}

// WithHeld marks key as held by the caller for every function receiving the
// returned context. Locks are not reentrant, components sharing a key use it
// to call each other while the lock is taken.
func WithHeld(ctx context.Context, key string) context.Context {
	held, _ := ctx.Value(heldKeysCtxKey{}).([]string)
	if slices.Contains(held, key) {
		return ctx
	}

	return context.WithValue(ctx, heldKeysCtxKey{}, append(slices.Clone(held), key))
}

// Held reports whether ctx was marked with WithHeld for key.
func Held(ctx context.Context, key string) bool {
	held, _ := ctx.Value(heldKeysCtxKey{}).([]string)
	return slices.Contains(held, key)
}

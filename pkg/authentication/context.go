// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

type contextKey struct{}

var senderContextKey = contextKey{}

// WithSender returns a new context carrying the authenticated webhook sender.
func WithSender(ctx context.Context, sender string) context.Context {
	return context.WithValue(ctx, senderContextKey, sender)
}

// GetSender retrieves the authenticated webhook sender from the context.
func GetSender(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(senderContextKey).(string)
	return s, ok
}

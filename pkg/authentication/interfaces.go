// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"
)

type SignatureVerifierInterface interface {
	// VerifySignature checks the signature sent with a webhook against its raw body and
	// returns the name of the sender it authenticates.
	VerifySignature(ctx context.Context, signature string, timestamp time.Time, body []byte) (string, error)
}

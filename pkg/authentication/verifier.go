// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

const signaturePrefix = "sha256="

var (
	ErrMissingSignature = errors.New("missing signature")
	ErrBadSignature     = errors.New("signature mismatch")
	ErrStaleSignature   = errors.New("signature timestamp outside tolerance")
)

var _ SignatureVerifierInterface = (*HMACVerifier)(nil)

// HMACVerifier authenticates webhooks signed with HMAC-SHA256 over
// "<unix timestamp>.<body>" using a secret shared with the sender.
type HMACVerifier struct {
	sender    string
	secret    []byte
	tolerance time.Duration
	now       func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *HMACVerifier) VerifySignature(ctx context.Context, signature string, timestamp time.Time, body []byte) (string, error) {
	_, span := v.tracer.Start(ctx, "authentication.HMACVerifier.VerifySignature")
	defer span.End()

	if signature == "" {
		return "", ErrMissingSignature
	}

	if v.tolerance > 0 {
		skew := v.now().Sub(timestamp)
		if skew < 0 {
			skew = -skew
		}
		if skew > v.tolerance {
			return "", ErrStaleSignature
		}
	}

	got, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		return "", ErrBadSignature
	}

	if !hmac.Equal(got, Sign(v.secret, timestamp, body)) {
		return "", ErrBadSignature
	}

	return v.sender, nil
}

// Sign computes the signature a sender attaches to body.
func Sign(secret []byte, timestamp time.Time, body []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(strconv.FormatInt(timestamp.Unix(), 10)))
	mac.Write([]byte("."))
	mac.Write(body)
	return mac.Sum(nil)
}

// SignatureHeader formats a signature as sent in the signature header.
func SignatureHeader(secret []byte, timestamp time.Time, body []byte) string {
	return signaturePrefix + hex.EncodeToString(Sign(secret, timestamp, body))
}

func NewHMACVerifier(
	sender string,
	secret string,
	tolerance time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *HMACVerifier {
	v := new(HMACVerifier)

	v.sender = sender
	v.secret = []byte(secret)
	v.tolerance = tolerance
	v.now = time.Now

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}

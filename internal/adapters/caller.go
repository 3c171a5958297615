// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package adapters applies a common call policy to every request made to an
// external collaborator: a per attempt timeout, a bounded number of calls in
// flight and exponential backoff between attempts.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/sync/semaphore"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

type Config struct {
	Timeout     time.Duration
	Attempts    uint
	Delay       time.Duration
	MaxInflight int64
}

type CallerInterface interface {
	Call(ctx context.Context, service, operation string, fn func(context.Context) error) error
}

var _ CallerInterface = (*Caller)(nil)

type Caller struct {
	slots    *semaphore.Weighted
	timeout  time.Duration
	attempts uint
	delay    time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Call runs fn until it succeeds, returns a non retryable error or runs out of attempts.
// Any error returned is an *apperrors.ExternalServiceError.
func (c *Caller) Call(ctx context.Context, service, operation string, fn func(context.Context) error) error {
	ctx, span := c.tracer.Start(ctx, fmt.Sprintf("adapters.%s.%s", service, operation))
	defer span.End()

	if err := c.slots.Acquire(ctx, 1); err != nil {
		return apperrors.NewExternalServiceError(service, operation, false, err)
	}
	defer c.slots.Release(1)

	attempt := 0
	err := retry.Do(
		func() error {
			attempt++

			callCtx, cancel := c.attemptContext(ctx)
			defer cancel()

			err := c.classify(ctx, service, operation, fn(callCtx))
			if err != nil {
				c.logger.Debugf("%s.%s attempt %d failed: %v", service, operation, attempt, err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(apperrors.IsRetryable),
		retry.LastErrorOnly(true),
	)

	c.setAvailability(service, err)

	if err == nil {
		return nil
	}

	var ext *apperrors.ExternalServiceError
	if errors.As(err, &ext) {
		return err
	}

	// retry.Context reports the parent context error on its own
	return apperrors.NewExternalServiceError(service, operation, false, err)
}

// classify turns a raw adapter error into an ExternalServiceError. Errors that
// already carry a classification are kept, timeouts of a single attempt are retryable
// and a cancelled parent context is not.
func (c *Caller) classify(parent context.Context, service, operation string, err error) error {
	if err == nil {
		return nil
	}

	var ext *apperrors.ExternalServiceError
	if errors.As(err, &ext) {
		return err
	}

	if parent.Err() != nil {
		return apperrors.NewExternalServiceError(service, operation, false, err)
	}

	var validation *apperrors.ValidationError
	if errors.As(err, &validation) {
		return apperrors.NewExternalServiceError(service, operation, false, err)
	}

	return apperrors.NewExternalServiceError(service, operation, true, err)
}

func (c *Caller) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Caller) setAvailability(service string, err error) {
	value := 1.0
	if err != nil && !errors.Is(err, context.Canceled) {
		value = 0
	}

	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": service}, value); mErr != nil {
		c.logger.Debugf("failed to report %s availability: %v", service, mErr)
	}
}

func NewCaller(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Caller {
	c := new(Caller)

	if cfg.MaxInflight <= 0 {
		cfg.MaxInflight = 1
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = 1
	}

	c.slots = semaphore.NewWeighted(cfg.MaxInflight)
	c.timeout = cfg.Timeout
	c.attempts = cfg.Attempts
	c.delay = cfg.Delay

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

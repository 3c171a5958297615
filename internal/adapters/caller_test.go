// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package adapters

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package adapters -destination ./mock_monitor.go -source=../monitoring/interfaces.go

func newTestCaller(t *testing.T, cfg Config) (*Caller, *MockMonitorInterface) {
	ctrl := gomock.NewController(t)
	mockMonitor := NewMockMonitorInterface(ctrl)

	return NewCaller(cfg, tracing.NewNoopTracer(), mockMonitor, logging.NewNoopLogger()), mockMonitor
}

func TestCaller_Call(t *testing.T) {
	permanent := apperrors.NewExternalServiceError("instance", "CreateDatabase", false, errors.New("database exists"))

	testCases := []struct {
		name          string
		failures      int
		failWith      error
		expectedCalls int32
		expectedAvail float64
		expectErr     bool
		retryable     bool
	}{
		{
			name:          "first attempt succeeds",
			expectedCalls: 1,
			expectedAvail: 1,
		},
		{
			name:          "transient failure then success",
			failures:      2,
			failWith:      errors.New("connection reset"),
			expectedCalls: 3,
			expectedAvail: 1,
		},
		{
			name:          "attempts exhausted",
			failures:      10,
			failWith:      errors.New("connection refused"),
			expectedCalls: 3,
			expectedAvail: 0,
			expectErr:     true,
			retryable:     true,
		},
		{
			name:          "permanent failure is not retried",
			failures:      10,
			failWith:      permanent,
			expectedCalls: 1,
			expectedAvail: 0,
			expectErr:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, mockMonitor := newTestCaller(t, Config{Timeout: time.Second, Attempts: 3, Delay: time.Millisecond, MaxInflight: 2})

			mockMonitor.EXPECT().SetDependencyAvailability(map[string]string{"component": "instance"}, tc.expectedAvail).Return(nil)

			var calls int32
			err := c.Call(context.Background(), "instance", "CreateDatabase", func(context.Context) error {
				n := atomic.AddInt32(&calls, 1)
				if int(n) <= tc.failures {
					return tc.failWith
				}
				return nil
			})

			if calls != tc.expectedCalls {
				t.Errorf("expected %d calls, got %d", tc.expectedCalls, calls)
			}

			if !tc.expectErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var ext *apperrors.ExternalServiceError
			if !errors.As(err, &ext) {
				t.Fatalf("expected ExternalServiceError, got %T %v", err, err)
			}
			if ext.Retryable != tc.retryable {
				t.Errorf("expected retryable=%v, got %v", tc.retryable, ext.Retryable)
			}
		})
	}
}

func TestCaller_AttemptTimeoutIsRetryable(t *testing.T) {
	c, mockMonitor := newTestCaller(t, Config{Timeout: 5 * time.Millisecond, Attempts: 2, Delay: time.Millisecond, MaxInflight: 1})
	mockMonitor.EXPECT().SetDependencyAvailability(gomock.Any(), 0.0).Return(nil)

	var calls int32
	err := c.Call(context.Background(), "compute", "HealthCheck", func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		<-ctx.Done()
		return ctx.Err()
	})

	if calls != 2 {
		t.Errorf("expected timed out attempt to be retried, got %d calls", calls)
	}
	if !apperrors.IsRetryable(err) {
		t.Errorf("expected a retryable external error, got %v", err)
	}
}

func TestCaller_BoundsInflightCalls(t *testing.T) {
	c, mockMonitor := newTestCaller(t, Config{Timeout: time.Second, Attempts: 1, MaxInflight: 2})
	mockMonitor.EXPECT().SetDependencyAvailability(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var (
		inflight int32
		peak     int32
		mu       sync.Mutex
		wg       sync.WaitGroup
	)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Call(context.Background(), "routing", "PublishRoute", func(context.Context) error {
				n := atomic.AddInt32(&inflight, 1)
				mu.Lock()
				if n > peak {
					peak = n
				}
				mu.Unlock()
				time.Sleep(2 * time.Millisecond)
				atomic.AddInt32(&inflight, -1)
				return nil
			})
		}()
	}

	wg.Wait()

	if peak > 2 {
		t.Fatalf("expected at most 2 calls in flight, saw %d", peak)
	}
}

func TestCaller_CancelledContext(t *testing.T) {
	c, mockMonitor := newTestCaller(t, Config{Timeout: time.Second, Attempts: 3, Delay: time.Millisecond, MaxInflight: 1})
	mockMonitor.EXPECT().SetDependencyAvailability(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Call(ctx, "compute", "EnsureCapacity", func(context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected an error on a cancelled context")
	}
	if apperrors.IsRetryable(err) {
		t.Errorf("expected cancellation not to be retryable, got %v", err)
	}
}

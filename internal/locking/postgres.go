// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package locking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

const unlockTimeout = 5 * time.Second

// ErrNoSession is returned when no advisory lock session frees up in time.
var ErrNoSession = errors.New("no advisory lock session available")

var _ LockerInterface = (*PostgresLocker)(nil)

// SessionPoolConfig configures the pool holding advisory lock sessions. Each
// held tenant lock pins one connection of it for the whole operation, the
// registry queries of the holder run on the registry pool.
func SessionPoolConfig(dsn string, maxSessions int32) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid lock session dsn: %w", err)
	}

	if maxSessions < 1 {
		maxSessions = 1
	}

	cfg.MaxConns = maxSessions
	cfg.MinConns = 0
	cfg.ConnConfig.RuntimeParams["application_name"] = "tenant-orchestrator-locks"

	return cfg, nil
}

// NewSessionPool opens the pool described by SessionPoolConfig. Connections
// are established on first use.
func NewSessionPool(ctx context.Context, dsn string, maxSessions int32) (*pgxpool.Pool, error) {
	cfg, err := SessionPoolConfig(dsn, maxSessions)
	if err != nil {
		return nil, err
	}

	return pgxpool.NewWithConfig(ctx, cfg)
}

// PostgresLocker extends the in-process lock with a session advisory lock so that
// several orchestrator replicas sharing one registry never work on the same tenant.
type PostgresLocker struct {
	pool  *pgxpool.Pool
	local *LocalLocker

	acquireTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (l *PostgresLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	ctx, span := l.tracer.Start(ctx, "locking.PostgresLocker.Lock")
	defer span.End()

	unlockLocal, err := l.local.Lock(ctx, key)
	if err != nil {
		return nil, err
	}

	conn, err := l.session(ctx)
	if err != nil {
		unlockLocal()
		return nil, err
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock(hashtextextended($1, 0))", key); err != nil {
		conn.Release()
		unlockLocal()
		return nil, fmt.Errorf("failed to take advisory lock for %s: %w", key, err)
	}

	return l.unlocker(key, conn, unlockLocal), nil
}

func (l *PostgresLocker) TryLock(ctx context.Context, key string) (Unlock, bool, error) {
	ctx, span := l.tracer.Start(ctx, "locking.PostgresLocker.TryLock")
	defer span.End()

	unlockLocal, ok, err := l.local.TryLock(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}

	conn, err := l.session(ctx)
	if err != nil {
		unlockLocal()
		return nil, false, err
	}

	var locked bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock(hashtextextended($1, 0))", key).Scan(&locked); err != nil {
		conn.Release()
		unlockLocal()
		return nil, false, fmt.Errorf("failed to try advisory lock for %s: %w", key, err)
	}

	if !locked {
		conn.Release()
		unlockLocal()
		return nil, false, nil
	}

	return l.unlocker(key, conn, unlockLocal), true, nil
}

// session waits at most acquireTimeout for a free connection, the wait for the
// advisory lock itself is bounded by ctx only.
func (l *PostgresLocker) session(ctx context.Context) (*pgxpool.Conn, error) {
	actx := ctx
	if l.acquireTimeout > 0 {
		var cancel context.CancelFunc
		actx, cancel = context.WithTimeout(ctx, l.acquireTimeout)
		defer cancel()
	}

	conn, err := l.pool.Acquire(actx)
	if err != nil {
		l.logger.Errorf("failed to acquire advisory lock session: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	return conn, nil
}

func (l *PostgresLocker) unlocker(key string, conn *pgxpool.Conn, unlockLocal Unlock) Unlock {
	var once sync.Once

	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
			defer cancel()

			if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock(hashtextextended($1, 0))", key); err != nil {
				// closing the session drops every advisory lock it holds
				l.logger.Errorf("failed to release advisory lock for %s, closing session: %v", key, err)
				_ = conn.Conn().Close(ctx)
			}

			conn.Release()
			unlockLocal()
		})
	}
}

// NewPostgresLocker takes locks on a pool created with NewSessionPool, never
// on the registry pool.
func NewPostgresLocker(pool *pgxpool.Pool, acquireTimeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *PostgresLocker {
	l := new(PostgresLocker)

	l.pool = pool
	l.local = NewLocalLocker()
	l.acquireTimeout = acquireTimeout

	l.tracer = tracer
	l.monitor = monitor
	l.logger = logger

	return l
}

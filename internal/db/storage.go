// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

const txTimeout = 30 * time.Second

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

type txKey struct{}

// txScope is the transaction shared by the storage calls of one WithTx block.
// It is opened by the first statement so that blocks which only call adapters
// never hold a connection.
type txScope struct {
	db     *sql.DB
	tx     TxInterface
	err    error
	cancel context.CancelFunc
}

func (s *txScope) runner(ctx context.Context) (TxInterface, error) {
	if s.tx != nil || s.err != nil {
		return s.tx, s.err
	}

	// the transaction outlives a cancelled request until WithTx decides its outcome
	txCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), txTimeout)

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		s.err = fmt.Errorf("failed to begin transaction: %w", err)
		return nil, s.err
	}

	s.tx = tx
	s.cancel = cancel

	return tx, nil
}

func (s *txScope) finish(commit bool) error {
	if s.tx == nil {
		return nil
	}
	defer s.cancel()

	if commit {
		return s.tx.Commit()
	}

	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func scopeFrom(ctx context.Context) *txScope {
	s, _ := ctx.Value(txKey{}).(*txScope)
	return s
}

type DBClient struct {
	// pool is closed with the client, db wraps it for squirrel
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// failedRunner stands in for a transaction that could not be opened, every
// statement of the block returns the begin error.
type failedRunner struct {
	err error
}

func (r failedRunner) Exec(string, ...interface{}) (sql.Result, error) {
	return nil, r.err
}

func (r failedRunner) Query(string, ...interface{}) (*sql.Rows, error) {
	return nil, r.err
}

func (r failedRunner) QueryRow(string, ...interface{}) sq.RowScanner {
	return failedRow(r)
}

func (r failedRunner) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, r.err
}

func (r failedRunner) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, r.err
}

func (r failedRunner) QueryRowContext(context.Context, string, ...interface{}) sq.RowScanner {
	return failedRow(r)
}

type failedRow struct {
	err error
}

func (r failedRow) Scan(...interface{}) error {
	return r.err
}

// Statement returns a builder bound to the transaction of the enclosing WithTx
// block, or to the pool outside of one.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	scope := scopeFrom(ctx)
	if scope == nil {
		return builder.RunWith(d.db)
	}

	tx, err := scope.runner(ctx)
	if err != nil {
		d.logger.Error(err)
		return builder.RunWith(failedRunner{err: err})
	}

	return builder.RunWith(tx)
}

// WithTx runs fn in a transaction committed when fn returns nil and rolled back
// otherwise. Nested calls join the outermost transaction.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if scopeFrom(ctx) != nil {
		return fn(ctx)
	}

	scope := &txScope{db: d.db}
	txCtx := context.WithValue(ctx, txKey{}, scope)

	if err := fn(txCtx); err != nil {
		if rbErr := scope.finish(false); rbErr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rbErr)
		}
		return err
	}

	if err := scope.finish(true); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Ping checks the database is reachable and reports it as a dependency.
func (d *DBClient) Ping(ctx context.Context) error {
	err := d.db.PingContext(ctx)

	availability := 1.0
	if err != nil {
		availability = 0
	}
	_ = d.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, availability)

	return err
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens a pgx pool for cfg and checks the database answers.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if cfg.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to record database stats: %w", err)
		}
	}

	d := newClient(stdlib.OpenDBFromPool(pool), tracer, monitor, logger)
	d.pool = pool

	if err := d.Ping(context.Background()); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return d, nil
}

// NewDBClientFromDB wraps an already opened database handle, without a native pool.
func NewDBClientFromDB(db *sql.DB, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	return newClient(db, tracer, monitor, logger)
}

func newClient(db *sql.DB, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	d := new(DBClient)

	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}

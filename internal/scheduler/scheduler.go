// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package scheduler runs the periodic background jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

// Job is one run of a periodic task. The context is cancelled when the scheduler stops.
type Job func(ctx context.Context) error

// Scheduler never overlaps two runs of the same job. A run still going when
// the next one is due makes the scheduler skip it.
type Scheduler struct {
	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Add registers job under name with a cron expression or a descriptor such as "@every 1m".
func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.run(name, job)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, name, err)
	}

	s.logger.Infof("scheduled job %s at %s", name, spec)

	return nil
}

func (s *Scheduler) run(name string, job Job) {
	ctx, span := s.tracer.Start(s.ctx, "scheduler."+name)
	defer span.End()

	start := time.Now()

	err := job(ctx)

	tags := map[string]string{"route": "job:" + name, "status": "ok"}
	if err != nil {
		tags["status"] = "error"
		s.logger.Errorf("job %s failed: %v", name, err)
	} else {
		s.logger.Debugf("job %s done in %s", name, time.Since(start))
	}

	if mErr := s.monitor.SetResponseTimeMetric(tags, time.Since(start).Seconds()); mErr != nil {
		s.logger.Debugf("failed to record duration of job %s: %v", name, mErr)
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop cancels running jobs and waits for them to return or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func NewScheduler(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Scheduler {
	s := new(Scheduler)

	cl := &cronLogger{logger: logger}

	s.cron = cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// cronLogger routes the cron library logs through the service logger.
type cronLogger struct {
	logger logging.LoggerInterface
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugf("cron: %s %v", msg, keysAndValues)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorf("cron: %s %v: %v", msg, keysAndValues, err)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"context"

	"github.com/canonical/tenant-orchestrator/internal/logging"
)

var _ DispatcherInterface = (*LogDispatcher)(nil)

// LogDispatcher only records events, used when no webhook is configured.
type LogDispatcher struct {
	logger logging.LoggerInterface
}

func (d *LogDispatcher) Dispatch(_ context.Context, e Event) error {
	d.logger.Infof("event %s type=%s tenant=%s data=%v", e.ID, e.Type, e.TenantID, e.Data)
	return nil
}

func NewLogDispatcher(logger logging.LoggerInterface) *LogDispatcher {
	d := new(LogDispatcher)
	d.logger = logger

	return d
}

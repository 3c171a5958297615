// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/canonical/tenant-orchestrator/internal/logging"
)

func TestMonitor_Metrics(t *testing.T) {
	m := NewMonitor("tenant-orchestrator-test", logging.NewNoopLogger())

	if m.GetService() != "tenant-orchestrator-test" {
		t.Errorf("unexpected service %s", m.GetService())
	}

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/status", "status": "OK"}, 0.2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := m.SetDependencyAvailability(map[string]string{"component": "routing"}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMonitor_Uninstantiated(t *testing.T) {
	m := &Monitor{service: "x", logger: logging.NewNoopLogger()}

	if err := m.SetResponseTimeMetric(nil, 1); err == nil {
		t.Error("expected error for missing histogram")
	}
	if err := m.SetDependencyAvailability(nil, 1); err == nil {
		t.Error("expected error for missing gauge")
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package compute

import (
	"fmt"
	"sort"

	"k8s.io/apimachinery/pkg/api/resource"
)

const (
	managedByLabel = "app.kubernetes.io/managed-by"
	managedByValue = "tenant-orchestrator"
	tenantLabel    = "tenant-orchestrator/tenant-id"
)

type HealthStatus string

const (
	Healthy   HealthStatus = "healthy"
	Unhealthy HealthStatus = "unhealthy"
	Unknown   HealthStatus = "unknown"
)

// Workload identifies the compute unit serving one tenant database.
type Workload struct {
	TenantID     string
	Subdomain    string
	DatabaseName string
}

// Name is the stable name of every runtime object created for the workload.
// It derives from the tenant ID so a released subdomain never collides with
// objects left behind by a failed tenant.
func (w Workload) Name() string {
	return "tenant-" + w.TenantID
}

func (w Workload) labels() map[string]string {
	return map[string]string{
		managedByLabel: managedByValue,
		tenantLabel:    w.TenantID,
		"app":          w.Name(),
	}
}

type Config struct {
	Namespace   string
	Image       string
	Port        int32
	CPULimit    string
	MemoryLimit string
	Network     string
	// Env is added to the environment of every tenant workload.
	Env map[string]string
}

type limits struct {
	cpu    resource.Quantity
	memory resource.Quantity
}

func parseLimits(cfg Config) (limits, error) {
	cpu, err := resource.ParseQuantity(cfg.CPULimit)
	if err != nil {
		return limits{}, fmt.Errorf("invalid cpu limit %q: %w", cfg.CPULimit, err)
	}

	memory, err := resource.ParseQuantity(cfg.MemoryLimit)
	if err != nil {
		return limits{}, fmt.Errorf("invalid memory limit %q: %w", cfg.MemoryLimit, err)
	}

	return limits{cpu: cpu, memory: memory}, nil
}

// workloadEnv is the environment of a tenant workload, sorted by key.
func workloadEnv(cfg Config, w Workload) [][2]string {
	env := map[string]string{}
	for k, v := range cfg.Env {
		env[k] = v
	}
	env["DB_NAME"] = w.DatabaseName
	env["DB_FILTER"] = fmt.Sprintf("^%s$", w.DatabaseName)
	env["TENANT_ID"] = w.TenantID

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([][2]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, [2]string{k, env[k]})
	}

	return out
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package compute

import (
	"context"
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

var testConfig = Config{
	Namespace:   "tenants",
	Image:       "odoo:17",
	Port:        8069,
	CPULimit:    "500m",
	MemoryLimit: "1Gi",
	Network:     "tenants",
	Env:         map[string]string{"DB_HOST": "postgres"},
}

var testWorkload = Workload{TenantID: "0192a3b4-0000-7000-8000-000000000001", Subdomain: "acme", DatabaseName: "tenant_acme"}

func newTestKubernetesRuntime(t *testing.T) (*KubernetesRuntime, *fake.Clientset) {
	t.Helper()

	clientset := fake.NewClientset()
	logger := logging.NewNoopLogger()

	k, err := NewKubernetesRuntime(clientset, testConfig, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return k, clientset
}

func TestKubernetesRuntime_EnsureCapacity(t *testing.T) {
	k, clientset := newTestKubernetesRuntime(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := k.EnsureCapacity(ctx, testWorkload); err != nil {
			t.Fatalf("attempt %d: unexpected error: %v", i, err)
		}
	}

	cm, err := clientset.CoreV1().ConfigMaps("tenants").Get(ctx, testWorkload.Name(), metav1.GetOptions{})
	if err != nil {
		t.Fatalf("expected configmap: %v", err)
	}
	if cm.Data["DB_NAME"] != "tenant_acme" || cm.Data["DB_HOST"] != "postgres" {
		t.Errorf("unexpected configmap data %v", cm.Data)
	}

	d, err := clientset.AppsV1().Deployments("tenants").Get(ctx, testWorkload.Name(), metav1.GetOptions{})
	if err != nil {
		t.Fatalf("expected deployment: %v", err)
	}
	if *d.Spec.Replicas != 1 {
		t.Errorf("expected 1 replica, got %d", *d.Spec.Replicas)
	}
	if got := d.Spec.Template.Spec.Containers[0].Resources.Limits.Memory().String(); got != "1Gi" {
		t.Errorf("expected memory limit 1Gi, got %s", got)
	}
	if d.Labels[tenantLabel] != testWorkload.TenantID {
		t.Errorf("expected tenant label, got %v", d.Labels)
	}

	if _, err := clientset.CoreV1().Services("tenants").Get(ctx, testWorkload.Name(), metav1.GetOptions{}); err != nil {
		t.Fatalf("expected service: %v", err)
	}
}

func TestKubernetesRuntime_EnsureCapacity_ScalesUp(t *testing.T) {
	k, clientset := newTestKubernetesRuntime(t)
	ctx := context.Background()

	if err := k.EnsureCapacity(ctx, testWorkload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, _ := clientset.AppsV1().Deployments("tenants").Get(ctx, testWorkload.Name(), metav1.GetOptions{})
	zero := int32(0)
	d.Spec.Replicas = &zero
	if _, err := clientset.AppsV1().Deployments("tenants").Update(ctx, d, metav1.UpdateOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := k.EnsureCapacity(ctx, testWorkload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, _ = clientset.AppsV1().Deployments("tenants").Get(ctx, testWorkload.Name(), metav1.GetOptions{})
	if *d.Spec.Replicas != 1 {
		t.Errorf("expected deployment to be scaled back to 1, got %d", *d.Spec.Replicas)
	}
}

func TestKubernetesRuntime_HealthCheck(t *testing.T) {
	k, clientset := newTestKubernetesRuntime(t)
	ctx := context.Background()

	status, err := k.HealthCheck(ctx, testWorkload)
	if err != nil || status != Unhealthy {
		t.Fatalf("expected missing deployment to be unhealthy, got %s %v", status, err)
	}

	if err := k.EnsureCapacity(ctx, testWorkload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, _ = k.HealthCheck(ctx, testWorkload)
	if status != Unhealthy {
		t.Errorf("expected deployment without available replicas to be unhealthy, got %s", status)
	}

	d, _ := clientset.AppsV1().Deployments("tenants").Get(ctx, testWorkload.Name(), metav1.GetOptions{})
	d.Status.AvailableReplicas = 1
	if _, err := clientset.AppsV1().Deployments("tenants").UpdateStatus(ctx, d, metav1.UpdateOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, _ = k.HealthCheck(ctx, testWorkload)
	if status != Healthy {
		t.Errorf("expected healthy, got %s", status)
	}
}

func TestKubernetesRuntime_Teardown(t *testing.T) {
	k, clientset := newTestKubernetesRuntime(t)
	ctx := context.Background()

	if err := k.Teardown(ctx, testWorkload); err != nil {
		t.Fatalf("teardown of a missing workload should succeed: %v", err)
	}

	if err := k.EnsureCapacity(ctx, testWorkload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := k.Teardown(ctx, testWorkload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deployments, _ := clientset.AppsV1().Deployments("tenants").List(ctx, metav1.ListOptions{})
	if len(deployments.Items) != 0 {
		t.Errorf("expected no deployments, got %d", len(deployments.Items))
	}
}

func TestKubernetesRuntime_Backend(t *testing.T) {
	k, _ := newTestKubernetesRuntime(t)

	if got := k.Backend(testWorkload); got != "http://tenant-0192a3b4-0000-7000-8000-000000000001.tenants.svc.cluster.local:8069" {
		t.Errorf("unexpected backend %s", got)
	}
}

func TestNewKubernetesRuntime_InvalidLimits(t *testing.T) {
	cfg := testConfig
	cfg.MemoryLimit = "lots"

	if _, err := NewKubernetesRuntime(fake.NewClientset(), cfg, tracing.NewNoopTracer(), nil, logging.NewNoopLogger()); err == nil {
		t.Fatal("expected invalid memory limit to be rejected")
	}
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package compute

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

var _ RuntimeInterface = (*KubernetesRuntime)(nil)

// KubernetesRuntime runs every tenant as a single replica Deployment exposed by a
// ClusterIP Service, configured through a per tenant ConfigMap.
type KubernetesRuntime struct {
	clientset kubernetes.Interface
	cfg       Config
	limits    limits

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (k *KubernetesRuntime) EnsureCapacity(ctx context.Context, w Workload) error {
	ctx, span := k.tracer.Start(ctx, "compute.KubernetesRuntime.EnsureCapacity")
	defer span.End()

	if err := k.ensureConfigMap(ctx, w); err != nil {
		return err
	}

	if err := k.ensureDeployment(ctx, w); err != nil {
		return err
	}

	return k.ensureService(ctx, w)
}

func (k *KubernetesRuntime) ensureConfigMap(ctx context.Context, w Workload) error {
	configMaps := k.clientset.CoreV1().ConfigMaps(k.cfg.Namespace)

	data := make(map[string]string)
	for _, kv := range workloadEnv(k.cfg, w) {
		data[kv[0]] = kv[1]
	}

	cm, err := configMaps.Get(ctx, w.Name(), metav1.GetOptions{})
	if err != nil {
		if !k8serrors.IsNotFound(err) {
			return fmt.Errorf("failed to get configmap %s: %w", w.Name(), err)
		}

		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{
				Name:      w.Name(),
				Namespace: k.cfg.Namespace,
				Labels:    w.labels(),
			},
			Data: data,
		}
		if _, err := configMaps.Create(ctx, cm, metav1.CreateOptions{}); err != nil && !k8serrors.IsAlreadyExists(err) {
			return fmt.Errorf("failed to create configmap %s: %w", w.Name(), err)
		}
		return nil
	}

	cm.Data = data
	if _, err := configMaps.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s: %w", w.Name(), err)
	}

	return nil
}

func (k *KubernetesRuntime) ensureDeployment(ctx context.Context, w Workload) error {
	deployments := k.clientset.AppsV1().Deployments(k.cfg.Namespace)

	existing, err := deployments.Get(ctx, w.Name(), metav1.GetOptions{})
	if err == nil {
		if existing.Spec.Replicas != nil && *existing.Spec.Replicas > 0 {
			return nil
		}

		replicas := int32(1)
		existing.Spec.Replicas = &replicas
		if _, err := deployments.Update(ctx, existing, metav1.UpdateOptions{}); err != nil {
			return fmt.Errorf("failed to scale deployment %s: %w", w.Name(), err)
		}
		return nil
	}

	if !k8serrors.IsNotFound(err) {
		return fmt.Errorf("failed to get deployment %s: %w", w.Name(), err)
	}

	if _, err := deployments.Create(ctx, k.deployment(w), metav1.CreateOptions{}); err != nil && !k8serrors.IsAlreadyExists(err) {
		return fmt.Errorf("failed to create deployment %s: %w", w.Name(), err)
	}

	return nil
}

func (k *KubernetesRuntime) deployment(w Workload) *appsv1.Deployment {
	replicas := int32(1)
	selector := map[string]string{"app": w.Name()}

	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      w.Name(),
			Namespace: k.cfg.Namespace,
			Labels:    w.labels(),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{MatchLabels: selector},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: w.labels()},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{
						{
							Name:  "app",
							Image: k.cfg.Image,
							Ports: []corev1.ContainerPort{{Name: "http", ContainerPort: k.cfg.Port}},
							EnvFrom: []corev1.EnvFromSource{
								{ConfigMapRef: &corev1.ConfigMapEnvSource{LocalObjectReference: corev1.LocalObjectReference{Name: w.Name()}}},
							},
							Resources: corev1.ResourceRequirements{
								Limits: corev1.ResourceList{
									corev1.ResourceCPU:    k.limits.cpu,
									corev1.ResourceMemory: k.limits.memory,
								},
							},
							ReadinessProbe: &corev1.Probe{
								ProbeHandler: corev1.ProbeHandler{
									TCPSocket: &corev1.TCPSocketAction{Port: intstr.FromString("http")},
								},
								PeriodSeconds: 5,
							},
						},
					},
				},
			},
		},
	}
}

func (k *KubernetesRuntime) ensureService(ctx context.Context, w Workload) error {
	services := k.clientset.CoreV1().Services(k.cfg.Namespace)

	_, err := services.Get(ctx, w.Name(), metav1.GetOptions{})
	if err == nil {
		return nil
	}

	if !k8serrors.IsNotFound(err) {
		return fmt.Errorf("failed to get service %s: %w", w.Name(), err)
	}

	svc := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      w.Name(),
			Namespace: k.cfg.Namespace,
			Labels:    w.labels(),
		},
		Spec: corev1.ServiceSpec{
			Selector: map[string]string{"app": w.Name()},
			Ports: []corev1.ServicePort{
				{Name: "http", Port: k.cfg.Port, TargetPort: intstr.FromString("http")},
			},
		},
	}

	if _, err := services.Create(ctx, svc, metav1.CreateOptions{}); err != nil && !k8serrors.IsAlreadyExists(err) {
		return fmt.Errorf("failed to create service %s: %w", w.Name(), err)
	}

	return nil
}

// HealthCheck reports healthy once the Deployment has an available replica.
func (k *KubernetesRuntime) HealthCheck(ctx context.Context, w Workload) (HealthStatus, error) {
	ctx, span := k.tracer.Start(ctx, "compute.KubernetesRuntime.HealthCheck")
	defer span.End()

	d, err := k.clientset.AppsV1().Deployments(k.cfg.Namespace).Get(ctx, w.Name(), metav1.GetOptions{})
	if err != nil {
		if k8serrors.IsNotFound(err) {
			return Unhealthy, nil
		}
		return Unknown, fmt.Errorf("failed to get deployment %s: %w", w.Name(), err)
	}

	if d.Status.AvailableReplicas > 0 {
		return Healthy, nil
	}

	return Unhealthy, nil
}

func (k *KubernetesRuntime) Teardown(ctx context.Context, w Workload) error {
	ctx, span := k.tracer.Start(ctx, "compute.KubernetesRuntime.Teardown")
	defer span.End()

	policy := metav1.DeletePropagationForeground
	opts := metav1.DeleteOptions{PropagationPolicy: &policy}

	if err := k.clientset.CoreV1().Services(k.cfg.Namespace).Delete(ctx, w.Name(), opts); err != nil && !k8serrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete service %s: %w", w.Name(), err)
	}

	if err := k.clientset.AppsV1().Deployments(k.cfg.Namespace).Delete(ctx, w.Name(), opts); err != nil && !k8serrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete deployment %s: %w", w.Name(), err)
	}

	if err := k.clientset.CoreV1().ConfigMaps(k.cfg.Namespace).Delete(ctx, w.Name(), opts); err != nil && !k8serrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete configmap %s: %w", w.Name(), err)
	}

	return nil
}

func (k *KubernetesRuntime) Backend(w Workload) string {
	return fmt.Sprintf("http://%s.%s.svc.cluster.local:%d", w.Name(), k.cfg.Namespace, k.cfg.Port)
}

// NewKubernetesClientset loads the given kubeconfig, the in-cluster configuration, or the default loading rules, in this order.
func NewKubernetesClientset(kubeconfigPath string) (kubernetes.Interface, error) {
	var config *rest.Config
	var err error

	if kubeconfigPath != "" {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	} else {
		config, err = rest.InClusterConfig()
		if err != nil {
			loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
			kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{})
			config, err = kubeConfig.ClientConfig()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return clientset, nil
}

func NewKubernetesRuntime(clientset kubernetes.Interface, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*KubernetesRuntime, error) {
	l, err := parseLimits(cfg)
	if err != nil {
		return nil, err
	}

	k := new(KubernetesRuntime)
	k.clientset = clientset
	k.cfg = cfg
	k.limits = l

	k.tracer = tracer
	k.monitor = monitor
	k.logger = logger

	return k, nil
}

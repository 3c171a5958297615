// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package compute

import (
	"context"
	"fmt"
	"io"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"

	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

var _ RuntimeInterface = (*DockerRuntime)(nil)

// DockerRuntime runs every tenant as a named container attached to a shared network.
type DockerRuntime struct {
	client *client.Client
	cfg    Config
	limits limits

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *DockerRuntime) EnsureCapacity(ctx context.Context, w Workload) error {
	ctx, span := d.tracer.Start(ctx, "compute.DockerRuntime.EnsureCapacity")
	defer span.End()

	info, err := d.client.ContainerInspect(ctx, w.Name())
	if err == nil {
		if info.State != nil && info.State.Running {
			return nil
		}
		if err := d.client.ContainerStart(ctx, info.ID, container.StartOptions{}); err != nil {
			return fmt.Errorf("failed to start container %s: %w", w.Name(), err)
		}
		return nil
	}

	if !client.IsErrNotFound(err) {
		return fmt.Errorf("failed to inspect container %s: %w", w.Name(), err)
	}

	if err := d.pullImage(ctx); err != nil {
		return err
	}

	id, err := d.createContainer(ctx, w)
	if err != nil {
		return err
	}

	if err := d.client.ContainerStart(ctx, id, container.StartOptions{}); err != nil {
		return fmt.Errorf("failed to start container %s: %w", w.Name(), err)
	}

	return nil
}

func (d *DockerRuntime) pullImage(ctx context.Context) error {
	if _, err := d.client.ImageInspect(ctx, d.cfg.Image); err == nil {
		return nil
	}

	reader, err := d.client.ImagePull(ctx, d.cfg.Image, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("failed to pull image %s: %w", d.cfg.Image, err)
	}
	defer reader.Close()

	// the pull only completes once its progress stream is drained
	_, err = io.Copy(io.Discard, reader)

	return err
}

func (d *DockerRuntime) createContainer(ctx context.Context, w Workload) (string, error) {
	env := make([]string, 0)
	for _, kv := range workloadEnv(d.cfg, w) {
		env = append(env, fmt.Sprintf("%s=%s", kv[0], kv[1]))
	}

	config := &container.Config{
		Image:  d.cfg.Image,
		Env:    env,
		Labels: w.labels(),
	}

	hostConfig := &container.HostConfig{
		Resources: container.Resources{
			Memory:   d.limits.memory.Value(),
			NanoCPUs: d.limits.cpu.MilliValue() * 1e6,
		},
		RestartPolicy: container.RestartPolicy{Name: container.RestartPolicyUnlessStopped},
	}

	var networking *network.NetworkingConfig
	if d.cfg.Network != "" {
		networking = &network.NetworkingConfig{
			EndpointsConfig: map[string]*network.EndpointSettings{
				d.cfg.Network: {Aliases: []string{w.Name()}},
			},
		}
	}

	resp, err := d.client.ContainerCreate(ctx, config, hostConfig, networking, nil, w.Name())
	if err != nil {
		return "", fmt.Errorf("failed to create container %s: %w", w.Name(), err)
	}

	for _, warning := range resp.Warnings {
		d.logger.Warnf("container %s: %s", w.Name(), warning)
	}

	return resp.ID, nil
}

// HealthCheck uses the image health check when one is defined, the running state otherwise.
func (d *DockerRuntime) HealthCheck(ctx context.Context, w Workload) (HealthStatus, error) {
	ctx, span := d.tracer.Start(ctx, "compute.DockerRuntime.HealthCheck")
	defer span.End()

	info, err := d.client.ContainerInspect(ctx, w.Name())
	if err != nil {
		if client.IsErrNotFound(err) {
			return Unhealthy, nil
		}
		return Unknown, fmt.Errorf("failed to inspect container %s: %w", w.Name(), err)
	}

	if info.State == nil || !info.State.Running {
		return Unhealthy, nil
	}

	if info.State.Health == nil || info.State.Health.Status == container.Healthy {
		return Healthy, nil
	}

	return Unhealthy, nil
}

func (d *DockerRuntime) Teardown(ctx context.Context, w Workload) error {
	ctx, span := d.tracer.Start(ctx, "compute.DockerRuntime.Teardown")
	defer span.End()

	err := d.client.ContainerRemove(ctx, w.Name(), container.RemoveOptions{Force: true, RemoveVolumes: true})
	if err != nil && !client.IsErrNotFound(err) {
		return fmt.Errorf("failed to remove container %s: %w", w.Name(), err)
	}

	return nil
}

func (d *DockerRuntime) Backend(w Workload) string {
	return fmt.Sprintf("http://%s:%d", w.Name(), d.cfg.Port)
}

// NewDockerClient connects to the daemon described by the DOCKER_* environment variables.
func NewDockerClient() (*client.Client, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	return cli, nil
}

func NewDockerRuntime(cli *client.Client, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DockerRuntime, error) {
	l, err := parseLimits(cfg)
	if err != nil {
		return nil, err
	}

	d := new(DockerRuntime)
	d.client = cli
	d.cfg = cfg
	d.limits = l

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}

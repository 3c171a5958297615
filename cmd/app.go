// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"

	"github.com/canonical/tenant-orchestrator/internal/adapters"
	"github.com/canonical/tenant-orchestrator/internal/compute"
	"github.com/canonical/tenant-orchestrator/internal/config"
	"github.com/canonical/tenant-orchestrator/internal/db"
	"github.com/canonical/tenant-orchestrator/internal/instance"
	"github.com/canonical/tenant-orchestrator/internal/locking"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/monitoring/prometheus"
	"github.com/canonical/tenant-orchestrator/internal/notification"
	"github.com/canonical/tenant-orchestrator/internal/routing"
	"github.com/canonical/tenant-orchestrator/internal/storage"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
	"github.com/canonical/tenant-orchestrator/pkg/authentication"
	"github.com/canonical/tenant-orchestrator/pkg/billing"
	"github.com/canonical/tenant-orchestrator/pkg/tenant"
	"github.com/canonical/tenant-orchestrator/pkg/webhooks"
)

const serviceName = "tenant-orchestrator"

// app holds the wired components shared by the long running server and the one shot commands.
type app struct {
	specs *config.EnvSpec

	dbClient *db.DBClient
	lockPool *pgxpool.Pool
	routing  *routing.RedisRegistrar

	tenants    *tenant.Service
	reconciler *tenant.Reconciler
	billing    *billing.Engine
	webhooks   *webhooks.Service
	webhookMW  *authentication.Middleware

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  *logging.Logger
}

func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}
	return specs, nil
}

func newApp(specs *config.EnvSpec) (*app, error) {
	logger := logging.NewLogger(specs.LogLevel)

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, specs.TracingSampleRatio, logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer, monitor, logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	runtime, err := newRuntime(specs, tracer, monitor, logger)
	if err != nil {
		dbClient.Close()
		return nil, err
	}

	instanceClient := instance.NewClient(
		instance.Config{
			BaseURL:        specs.InstanceAdminURL,
			MasterPassword: specs.InstanceMasterPassword,
			AdminLogin:     specs.InstanceAdminLogin,
			Language:       specs.InstanceLanguage,
			BaseModules:    specs.InstanceBaseModules,
			Timeout:        specs.AdapterTimeout,
		},
		tracer, monitor, logger,
	)

	registrar := routing.NewRedisRegistrar(
		redis.NewClient(&redis.Options{
			Addr:     specs.RoutingRedisAddr,
			Password: specs.RoutingRedisPassword,
			DB:       specs.RoutingRedisDB,
		}),
		routing.Config{
			RootKey:      specs.RoutingRootKey,
			BaseDomain:   specs.RoutingBaseDomain,
			Entrypoint:   specs.RoutingEntrypoint,
			CertResolver: specs.RoutingCertResolver,
		},
		tracer, monitor, logger,
	)

	var notifier notification.DispatcherInterface = notification.NewLogDispatcher(logger)
	if specs.NotificationWebhookURL != "" {
		notifier = notification.NewWebhookDispatcher(specs.NotificationWebhookURL, specs.AdapterTimeout, tracer, monitor, logger)
	}

	lockPool, err := locking.NewSessionPool(context.Background(), specs.DSN, specs.LockMaxSessions)
	if err != nil {
		dbClient.Close()
		return nil, fmt.Errorf("failed to create lock session pool: %w", err)
	}

	locker := locking.NewPostgresLocker(lockPool, specs.LockAcquireTimeout, tracer, monitor, logger)

	caller := adapters.NewCaller(
		adapters.Config{
			Timeout:     specs.AdapterTimeout,
			Attempts:    specs.AdapterRetryAttempts,
			Delay:       specs.AdapterRetryDelay,
			MaxInflight: specs.AdapterMaxInflight,
		},
		tracer, monitor, logger,
	)

	tenants := tenant.NewService(
		s,
		runtime,
		instanceClient,
		registrar,
		notifier,
		locker,
		caller,
		tenant.Config{
			HealthCheckAttempts:  specs.HealthCheckAttempts,
			HealthCheckInterval:  specs.HealthCheckInterval,
			Async:                specs.ProvisionAsync,
			ProvisioningDeadline: specs.ProvisioningDeadline,
			ReservedSubdomains:   specs.ReservedSubdomains,
		},
		tracer, monitor, logger,
	)

	a := new(app)

	a.specs = specs
	a.dbClient = dbClient
	a.lockPool = lockPool
	a.routing = registrar
	a.tenants = tenants
	a.reconciler = tenant.NewReconciler(tenants, specs.ReconcileWorkers, specs.ReconcileMaxRepairAttempts, tracer, monitor, logger)
	a.billing = billing.NewEngine(
		s,
		tenants,
		notifier,
		locker,
		billing.Config{GracePeriod: specs.BillingGracePeriod, Workers: specs.ReconcileWorkers},
		tracer, monitor, logger,
	)

	a.webhooks = webhooks.NewService(tenants, a.billing, tracer, monitor, logger)
	a.webhookMW = authentication.NewMiddleware(newSignatureVerifier(specs, tracer, monitor, logger), tracer, monitor, logger)

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a, nil
}

// newRuntime picks the compute backend tenant workloads run on.
func newRuntime(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (compute.RuntimeInterface, error) {
	cfg := compute.Config{
		Namespace:   specs.RuntimeNamespace,
		Image:       specs.RuntimeImage,
		Port:        specs.RuntimePort,
		CPULimit:    specs.RuntimeCPULimit,
		MemoryLimit: specs.RuntimeMemoryLimit,
		Network:     specs.DockerNetwork,
		Env:         specs.RuntimeEnv,
	}

	switch strings.ToLower(specs.RuntimeDriver) {
	case "kubernetes", "k8s":
		clientset, err := compute.NewKubernetesClientset(specs.KubeconfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
		}
		return compute.NewKubernetesRuntime(clientset, cfg, tracer, monitor, logger)
	case "docker":
		cli, err := compute.NewDockerClient()
		if err != nil {
			return nil, fmt.Errorf("failed to create docker client: %w", err)
		}
		return compute.NewDockerRuntime(cli, cfg, tracer, monitor, logger)
	default:
		return nil, fmt.Errorf("unknown runtime driver %q", specs.RuntimeDriver)
	}
}

func newSignatureVerifier(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) authentication.SignatureVerifierInterface {
	if specs.WebhookSecret == "" {
		logger.Warn("webhook secret not set, inbound webhooks are not authenticated")
		return authentication.NewNoopVerifier()
	}

	return authentication.NewHMACVerifier(specs.WebhookSender, specs.WebhookSecret, specs.WebhookTolerance, tracer, monitor, logger)
}

func (a *app) Close() {
	a.tenants.Wait()

	if err := a.routing.Close(); err != nil {
		a.logger.Errorf("failed to close routing client: %v", err)
	}
	a.lockPool.Close()
	a.dbClient.Close()
	_ = a.logger.Sync()
}

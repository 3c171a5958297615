// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	TracingSampleRatio float64 `envconfig:"tracing_sample_ratio" default:"1"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// LockMaxSessions bounds the tenants locked at once, each lock pins a session of its own pool.
	LockMaxSessions    int32         `envconfig:"lock_max_sessions" default:"32"`
	LockAcquireTimeout time.Duration `envconfig:"lock_acquire_timeout" default:"30s"`

	// RuntimeDriver selects the compute backend, kubernetes or docker.
	RuntimeDriver      string `envconfig:"runtime_driver" default:"kubernetes"`
	KubeconfigPath     string `envconfig:"kubeconfig"`
	RuntimeNamespace   string `envconfig:"runtime_namespace" default:"tenants"`
	RuntimeImage       string `envconfig:"runtime_image" required:"true"`
	RuntimePort        int32  `envconfig:"runtime_port" default:"8069"`
	RuntimeCPULimit    string `envconfig:"runtime_cpu_limit" default:"1"`
	RuntimeMemoryLimit string `envconfig:"runtime_memory_limit" default:"1Gi"`
	DockerNetwork      string `envconfig:"docker_network" default:"tenants"`
	// RuntimeEnv is passed to every tenant workload, e.g. DB_HOST:postgres,DB_PORT:5432.
	RuntimeEnv map[string]string `envconfig:"runtime_env"`

	InstanceAdminURL       string   `envconfig:"instance_admin_url" required:"true"`
	InstanceMasterPassword string   `envconfig:"instance_master_password" required:"true"`
	InstanceAdminLogin     string   `envconfig:"instance_admin_login" default:"admin"`
	InstanceLanguage       string   `envconfig:"instance_language" default:"en_US"`
	InstanceBaseModules    []string `envconfig:"instance_base_modules" default:"base,web"`

	RoutingRedisAddr     string `envconfig:"routing_redis_addr" default:"localhost:6379"`
	RoutingRedisPassword string `envconfig:"routing_redis_password"`
	RoutingRedisDB       int    `envconfig:"routing_redis_db" default:"0"`
	RoutingRootKey       string `envconfig:"routing_root_key" default:"traefik"`
	RoutingBaseDomain    string `envconfig:"routing_base_domain" required:"true"`
	RoutingEntrypoint    string `envconfig:"routing_entrypoint" default:"websecure"`
	RoutingCertResolver  string `envconfig:"routing_cert_resolver" default:"letsencrypt"`

	NotificationWebhookURL string `envconfig:"notification_webhook_url"`

	// WebhookSecret signs purchase and payment webhooks. Signatures are not checked when empty.
	WebhookSecret    string        `envconfig:"webhook_secret"`
	WebhookSender    string        `envconfig:"webhook_sender" default:"storefront"`
	WebhookTolerance time.Duration `envconfig:"webhook_tolerance" default:"5m"`

	AdapterTimeout       time.Duration `envconfig:"adapter_timeout" default:"30s"`
	AdapterRetryAttempts uint          `envconfig:"adapter_retry_attempts" default:"3"`
	AdapterRetryDelay    time.Duration `envconfig:"adapter_retry_delay" default:"500ms"`
	AdapterMaxInflight   int64         `envconfig:"adapter_max_inflight" default:"16"`

	HealthCheckAttempts uint          `envconfig:"health_check_attempts" default:"10"`
	HealthCheckInterval time.Duration `envconfig:"health_check_interval" default:"6s"`

	ProvisionAsync       bool          `envconfig:"provision_async" default:"true"`
	ProvisioningDeadline time.Duration `envconfig:"provisioning_deadline" default:"15m"`
	ReservedSubdomains   []string      `envconfig:"reserved_subdomains" default:"www,api,admin,mail"`

	ReconcileSchedule          string `envconfig:"reconcile_schedule" default:"@every 1m"`
	ReconcileWorkers           int    `envconfig:"reconcile_workers" default:"8"`
	ReconcileMaxRepairAttempts int    `envconfig:"reconcile_max_repair_attempts" default:"5"`

	BillingEvaluationSchedule string        `envconfig:"billing_evaluation_schedule" default:"@every 5m"`
	BillingGracePeriod        time.Duration `envconfig:"billing_grace_period" default:"0s"`
}

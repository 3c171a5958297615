// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package instance

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/tenant-orchestrator/internal/apperrors"
	"github.com/canonical/tenant-orchestrator/internal/logging"
	"github.com/canonical/tenant-orchestrator/internal/monitoring"
	"github.com/canonical/tenant-orchestrator/internal/tracing"
)

// UserLimitParameter is the system parameter read by the runtime to cap active users.
const UserLimitParameter = "tenant.max_users"

type Config struct {
	BaseURL        string
	MasterPassword string
	AdminLogin     string
	Language       string
	BaseModules    []string
	Timeout        time.Duration
}

var _ ClientInterface = (*Client)(nil)

// Client drives database administration of the managed application runtime over JSON-RPC.
type Client struct {
	rpc *rpcClient
	cfg Config

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// AdminPassword derives the administrator password of a tenant database from the master password.
func (c *Client) AdminPassword(name string) string {
	mac := hmac.New(sha256.New, []byte(c.cfg.MasterPassword))
	mac.Write([]byte(name))
	return hex.EncodeToString(mac.Sum(nil))[:32]
}

func (c *Client) DatabaseExists(ctx context.Context, name string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "instance.Client.DatabaseExists")
	defer span.End()

	var names []string
	if err := c.rpc.call(ctx, "DatabaseExists", "db", "list", &names); err != nil {
		return false, err
	}

	return slices.Contains(names, name), nil
}

// CreateDatabase creates the database when missing and installs the base and requested modules.
func (c *Client) CreateDatabase(ctx context.Context, name string, modules []string) error {
	ctx, span := c.tracer.Start(ctx, "instance.Client.CreateDatabase")
	defer span.End()

	exists, err := c.DatabaseExists(ctx, name)
	if err != nil {
		return err
	}

	if !exists {
		err := c.rpc.call(ctx, "CreateDatabase", "db", "create_database", nil,
			c.cfg.MasterPassword, name, false, c.cfg.Language, c.AdminPassword(name), c.cfg.AdminLogin,
		)
		if err != nil {
			return err
		}
		c.logger.Infof("created database %s", name)
	}

	return c.installModules(ctx, name, modules)
}

func (c *Client) installModules(ctx context.Context, name string, modules []string) error {
	wanted := make([]string, 0, len(c.cfg.BaseModules)+len(modules))
	for _, m := range append(slices.Clone(c.cfg.BaseModules), modules...) {
		if !slices.Contains(wanted, m) {
			wanted = append(wanted, m)
		}
	}

	if len(wanted) == 0 {
		return nil
	}

	uid, err := c.login(ctx, name)
	if err != nil {
		return err
	}

	var ids []int64
	domain := []interface{}{[]interface{}{"name", "in", wanted}, []interface{}{"state", "!=", "installed"}}
	if err := c.executeKw(ctx, "InstallModules", name, uid, "ir.module.module", "search", []interface{}{domain}, &ids); err != nil {
		return err
	}

	if len(ids) == 0 {
		return nil
	}

	return c.executeKw(ctx, "InstallModules", name, uid, "ir.module.module", "button_immediate_install", []interface{}{ids}, nil)
}

func (c *Client) SetUserLimit(ctx context.Context, name string, maxUsers int) error {
	ctx, span := c.tracer.Start(ctx, "instance.Client.SetUserLimit")
	defer span.End()

	if maxUsers < 1 {
		return apperrors.NewValidationError("max_users", "must be at least 1, got %d", maxUsers)
	}

	uid, err := c.login(ctx, name)
	if err != nil {
		return err
	}

	return c.executeKw(ctx, "SetUserLimit", name, uid, "ir.config_parameter", "set_param", []interface{}{UserLimitParameter, strconv.Itoa(maxUsers)}, nil)
}

// DropDatabase removes the database. A missing database is not an error.
func (c *Client) DropDatabase(ctx context.Context, name string) error {
	ctx, span := c.tracer.Start(ctx, "instance.Client.DropDatabase")
	defer span.End()

	exists, err := c.DatabaseExists(ctx, name)
	if err != nil {
		return err
	}

	if !exists {
		return nil
	}

	if err := c.rpc.call(ctx, "DropDatabase", "db", "drop", nil, c.cfg.MasterPassword, name); err != nil {
		return err
	}

	c.logger.Infof("dropped database %s", name)

	return nil
}

func (c *Client) login(ctx context.Context, name string) (int64, error) {
	var uid interface{}
	if err := c.rpc.call(ctx, "Login", "common", "login", &uid, name, c.cfg.AdminLogin, c.AdminPassword(name)); err != nil {
		return 0, err
	}

	// a failed login yields false instead of a user id
	id, ok := uid.(float64)
	if !ok || id <= 0 {
		return 0, apperrors.NewExternalServiceError(serviceName, "Login", false, fmt.Errorf("login to %s rejected", name))
	}

	return int64(id), nil
}

func (c *Client) executeKw(ctx context.Context, operation, name string, uid int64, model, method string, args []interface{}, out interface{}) error {
	return c.rpc.call(ctx, operation, "object", "execute_kw", out, name, uid, c.AdminPassword(name), model, method, args)
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	c.rpc = &rpcClient{http: httpClient}
	c.cfg = cfg

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

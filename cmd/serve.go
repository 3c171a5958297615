// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-orchestrator/internal/scheduler"
	"github.com/canonical/tenant-orchestrator/pkg/billing"
	"github.com/canonical/tenant-orchestrator/pkg/status"
	"github.com/canonical/tenant-orchestrator/pkg/tenant"
	"github.com/canonical/tenant-orchestrator/pkg/web"
	"github.com/canonical/tenant-orchestrator/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server and the background jobs",
	Long:  `Launch the Command API, the reconciler and the billing evaluation, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	a, err := newApp(specs)
	if err != nil {
		return err
	}
	defer a.Close()

	logger := a.logger

	jobs := scheduler.NewScheduler(a.tracer, a.monitor, logger)
	if err := jobs.Add("reconcile", specs.ReconcileSchedule, a.reconciler.Run); err != nil {
		return err
	}
	if err := jobs.Add("billing", specs.BillingEvaluationSchedule, a.billing.EvaluateAll); err != nil {
		return err
	}

	router := web.NewRouter(
		web.Config{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			Dependencies: map[string]status.PingerInterface{
				"database": a.dbClient,
				"routing":  a.routing,
			},
		},
		[]web.APIInterface{
			tenant.NewAPI(a.tenants, a.tracer, a.monitor, logger),
			billing.NewAPI(a.billing, a.tracer, a.monitor, logger),
			webhooks.NewAPI(a.webhooks, a.webhookMW.Authenticate, logger),
		},
		a.tracer,
		a.monitor,
		logger,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		logger.Infof("Starting HTTP server on port %v", specs.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	jobs.Start()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}
	if err := jobs.Stop(ctx); err != nil {
		logger.Warnf("background jobs did not stop in time: %v", err)
	}

	return serverError
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/tenant-orchestrator/migrations"
)

var errPendingMigrations = errors.New("migrations are pending")

// migrateCmd manages the registry schema: plans, tenants, billing cycles, usage and payments.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the registry schema",
	Long:  `Apply, roll back or inspect the registry schema. The DSN defaults to the DSN environment variable.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd, (*migrator).up)
	},
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply every pending migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd, (*migrator).up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the last migration, or down to --to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd, (*migrator).down)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and when they were applied",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd, (*migrator).status)
	},
}

var migrateCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail when migrations are pending",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withMigrator(cmd, (*migrator).check)
	},
}

func init() {
	migrateCmd.PersistentFlags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text or json)")
	migrateDownCmd.Flags().Int64("to", -1, "Roll back every migration newer than this version")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd, migrateCheckCmd)
	rootCmd.AddCommand(migrateCmd)
}

type migrationProvider interface {
	Up(ctx context.Context) ([]*goose.MigrationResult, error)
	Down(ctx context.Context) (*goose.MigrationResult, error)
	DownTo(ctx context.Context, version int64) ([]*goose.MigrationResult, error)
	Status(ctx context.Context) ([]*goose.MigrationStatus, error)
	HasPending(ctx context.Context) (bool, error)
	GetDBVersion(ctx context.Context) (int64, error)
}

type migrator struct {
	provider migrationProvider
	json     bool
	downTo   int64
	out      io.Writer
}

func withMigrator(cmd *cobra.Command, run func(*migrator, context.Context) error) error {
	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		dsn = os.Getenv("DSN")
	}
	if dsn == "" {
		return errors.New("no DSN given, use --dsn or the DSN environment variable")
	}

	format, _ := cmd.Flags().GetString("format")
	downTo := int64(-1)
	if f := cmd.Flags().Lookup("to"); f != nil {
		downTo, _ = cmd.Flags().GetInt64("to")
	}

	db, err := openMigrationDB(cmd.Context(), dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	m := &migrator{provider: provider, json: format == "json", downTo: downTo, out: cmd.OutOrStdout()}

	return run(m, cmd.Context())
}

func openMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return db, nil
}

func (m *migrator) up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return err
	}
	return m.printResults(results)
}

func (m *migrator) down(ctx context.Context) error {
	if m.downTo >= 0 {
		results, err := m.provider.DownTo(ctx, m.downTo)
		if err != nil {
			return err
		}
		return m.printResults(results)
	}

	result, err := m.provider.Down(ctx)
	if err != nil {
		return err
	}
	return m.printResults([]*goose.MigrationResult{result})
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}

	if m.json {
		return json.NewEncoder(m.out).Encode(statuses)
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "VERSION\tAPPLIED AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.Source.Version, appliedAt, s.Source.Path)
	}
	return w.Flush()
}

// check reports the schema version and fails while migrations are pending, for
// use as a deployment gate.
func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	version, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if m.json {
		state := "ok"
		if pending {
			state = "pending"
		}
		if err := json.NewEncoder(m.out).Encode(map[string]interface{}{"status": state, "version": version}); err != nil {
			return err
		}
	} else if !pending {
		fmt.Fprintf(m.out, "schema is up to date (version %d)\n", version)
	}

	if pending {
		return fmt.Errorf("%w: schema at version %d", errPendingMigrations, version)
	}
	return nil
}

func (m *migrator) printResults(results []*goose.MigrationResult) error {
	if m.json {
		if results == nil {
			results = []*goose.MigrationResult{}
		}
		return json.NewEncoder(m.out).Encode(map[string]interface{}{"applied": results})
	}

	if len(results) == 0 {
		fmt.Fprintln(m.out, "no migrations to apply")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(m.out, "%s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}
	return nil
}

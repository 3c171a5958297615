// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/canonical/tenant-orchestrator/pkg/billing"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage subscription plans",
}

var createPlanCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxUsers, _ := cmd.Flags().GetInt("max-users")
		cycleDays, _ := cmd.Flags().GetInt("cycle-days")
		currency, _ := cmd.Flags().GetString("currency")
		hours, _ := cmd.Flags().GetString("hours")
		price, _ := cmd.Flags().GetString("price")

		req := billing.CreatePlanRequest{
			Name:      args[0],
			MaxUsers:  maxUsers,
			CycleDays: cycleDays,
			Currency:  currency,
		}

		var err error
		if req.HoursPerCycle, err = decimal.NewFromString(hours); err != nil {
			return fmt.Errorf("invalid hours %q: %w", hours, err)
		}
		if req.Price, err = decimal.NewFromString(price); err != nil {
			return fmt.Errorf("invalid price %q: %w", price, err)
		}

		// an unset limit stays null, meaning unlimited storage
		if cmd.Flags().Changed("storage-limit") {
			limit, _ := cmd.Flags().GetInt64("storage-limit")
			req.StorageLimit = &limit
		}

		var p billing.PlanView
		if err := client().do(cmd.Context(), http.MethodPost, "/api/v0/plans", req, &p); err != nil {
			return fmt.Errorf("failed to create plan: %w", err)
		}

		return printPlans(cmd.OutOrStdout(), p)
	},
}

var listPlansCmd = &cobra.Command{
	Use:   "list",
	Short: "List plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Data []billing.PlanView `json:"data"`
		}
		if err := client().do(cmd.Context(), http.MethodGet, "/api/v0/plans", nil, &resp); err != nil {
			return fmt.Errorf("failed to list plans: %w", err)
		}

		return printPlans(cmd.OutOrStdout(), resp.Data...)
	},
}

var cyclesCmd = &cobra.Command{
	Use:   "cycles [tenant-id]",
	Short: "List the billing cycles of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp struct {
			Data []billing.CycleView `json:"data"`
		}
		if err := client().do(cmd.Context(), http.MethodGet, "/api/v0/tenants/"+url.PathEscape(args[0])+"/cycles", nil, &resp); err != nil {
			return fmt.Errorf("failed to list cycles: %w", err)
		}

		if output == "json" {
			return printJSON(cmd.OutOrStdout(), resp.Data)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tSTART\tEND\tUSED\tALLOWED\tSTATUS")
		for _, c := range resp.Data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.PeriodStart.Format("2006-01-02 15:04"), c.PeriodEnd.Format("2006-01-02 15:04"), c.HoursUsed, c.HoursAllowed, c.Status)
		}
		return w.Flush()
	},
}

func printPlans(out io.Writer, plans ...billing.PlanView) error {
	if output == "json" {
		return printJSON(out, plans)
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMAX_USERS\tSTORAGE\tHOURS\tDAYS\tPRICE")
	for _, p := range plans {
		storage := "unlimited"
		if p.StorageLimit != nil {
			storage = fmt.Sprintf("%d", *p.StorageLimit)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%d\t%s %s\n", p.ID, p.Name, p.MaxUsers, storage, p.HoursPerCycle, p.CycleDays, p.Price.StringFixed(2), p.Currency)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(planCmd, cyclesCmd)
	planCmd.AddCommand(createPlanCmd, listPlansCmd)

	createPlanCmd.Flags().Int("max-users", 1, "Maximum number of users")
	createPlanCmd.Flags().Int64("storage-limit", 0, "Storage limit in bytes, unlimited when not set")
	createPlanCmd.Flags().String("hours", "720", "Runtime hours allowed per cycle")
	createPlanCmd.Flags().Int("cycle-days", 30, "Length of a billing cycle in days")
	createPlanCmd.Flags().String("price", "0", "Price of one cycle")
	createPlanCmd.Flags().String("currency", "EUR", "ISO 4217 currency code")
}

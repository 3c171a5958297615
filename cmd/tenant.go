// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/tenant-orchestrator/pkg/tenant"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var createTenantCmd = &cobra.Command{
	Use:   "create [subdomain]",
	Short: "Provision a new tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		planID, _ := cmd.Flags().GetString("plan")
		modules, _ := cmd.Flags().GetStringSlice("modules")
		requestID, _ := cmd.Flags().GetString("request-id")

		var t tenant.TenantView
		err := client().do(cmd.Context(), http.MethodPost, "/api/v0/tenants", tenant.CreateTenantRequest{
			RequestID: requestID,
			Subdomain: args[0],
			PlanID:    planID,
			Modules:   modules,
		}, &t)
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		return printTenants(cmd.OutOrStdout(), t)
	},
}

var getTenantCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var t tenant.TenantView
		if err := client().do(cmd.Context(), http.MethodGet, "/api/v0/tenants/"+url.PathEscape(args[0]), nil, &t); err != nil {
			return fmt.Errorf("failed to get tenant: %w", err)
		}

		return printTenants(cmd.OutOrStdout(), t)
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenants",
	RunE: func(cmd *cobra.Command, args []string) error {
		statuses, _ := cmd.Flags().GetStringSlice("status")
		page, _ := cmd.Flags().GetInt64("page")
		size, _ := cmd.Flags().GetInt64("size")

		q := url.Values{}
		for _, s := range statuses {
			q.Add("status", s)
		}
		if page > 0 {
			q.Set("page", strconv.FormatInt(page, 10))
		}
		if size > 0 {
			q.Set("size", strconv.FormatInt(size, 10))
		}

		var resp struct {
			Data []tenant.TenantView `json:"data"`
		}
		if err := client().do(cmd.Context(), http.MethodGet, "/api/v0/tenants?"+q.Encode(), nil, &resp); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		return printTenants(cmd.OutOrStdout(), resp.Data...)
	},
}

var suspendTenantCmd = &cobra.Command{
	Use:   "suspend [id]",
	Short: "Suspend a tenant, retracting its route",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reason, _ := cmd.Flags().GetString("reason")

		return tenantAction(cmd, http.MethodPost, args[0], "suspend", tenant.SuspendTenantRequest{Reason: reason})
	},
}

var resumeTenantCmd = &cobra.Command{
	Use:   "resume [id]",
	Short: "Resume a suspended tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return tenantAction(cmd, http.MethodPost, args[0], "resume", nil)
	},
}

var retryTenantCmd = &cobra.Command{
	Use:   "retry [id]",
	Short: "Retry provisioning of a failed tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return tenantAction(cmd, http.MethodPost, args[0], "retry", nil)
	},
}

var cancelTenantCmd = &cobra.Command{
	Use:   "cancel [id]",
	Short: "Cancel the provisioning of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return tenantAction(cmd, http.MethodPost, args[0], "cancel", nil)
	},
}

var deleteTenantCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a tenant and release its resources",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return tenantAction(cmd, http.MethodDelete, args[0], "", nil)
	},
}

func tenantAction(cmd *cobra.Command, method, id, action string, body interface{}) error {
	path := "/api/v0/tenants/" + url.PathEscape(id)
	if action != "" {
		path += "/" + action
	}

	var t tenant.TenantView
	if err := client().do(cmd.Context(), method, path, body, &t); err != nil {
		return fmt.Errorf("failed to %s tenant: %w", cmd.Name(), err)
	}

	return printTenants(cmd.OutOrStdout(), t)
}

func printTenants(out io.Writer, tenants ...tenant.TenantView) error {
	if output == "json" {
		return printJSON(out, tenants)
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSUBDOMAIN\tSTATUS\tPLAN\tMAX_USERS\tCREATED_AT\tFAILURE")
	for _, t := range tenants {
		failure := ""
		if t.FailureReason != nil {
			failure = *t.FailureReason
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n", t.ID, t.Subdomain, t.Status, t.PlanID, t.MaxUsers, t.CreatedAt.Format("2006-01-02 15:04"), failure)
	}
	return w.Flush()
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd, getTenantCmd, listTenantsCmd, suspendTenantCmd, resumeTenantCmd, retryTenantCmd, cancelTenantCmd, deleteTenantCmd)

	createTenantCmd.Flags().String("plan", "", "Plan ID of the tenant")
	createTenantCmd.Flags().StringSlice("modules", nil, "Comma-separated list of application modules")
	createTenantCmd.Flags().String("request-id", "", "Idempotency key of the purchase")
	_ = createTenantCmd.MarkFlagRequired("plan")

	listTenantsCmd.Flags().StringSlice("status", nil, "Filter by status, e.g. active,suspended")
	listTenantsCmd.Flags().Int64("page", 0, "Page number")
	listTenantsCmd.Flags().Int64("size", 0, "Page size")

	suspendTenantCmd.Flags().String("reason", "", "Reason recorded with the suspension")
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one reconciliation pass and one billing evaluation, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		specs, err := loadSpecs()
		if err != nil {
			return err
		}

		a, err := newApp(specs)
		if err != nil {
			return err
		}
		defer a.Close()

		skipBilling, _ := cmd.Flags().GetBool("skip-billing")

		runErr := a.reconciler.Run(cmd.Context())
		if !skipBilling {
			runErr = errors.Join(runErr, a.billing.EvaluateAll(cmd.Context()))
		}

		if runErr != nil {
			return runErr
		}

		cmd.Println("reconciliation complete")
		return nil
	},
}

func init() {
	reconcileCmd.Flags().Bool("skip-billing", false, "Only reconcile tenant resources")

	rootCmd.AddCommand(reconcileCmd)
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	userID   string
	endpoint string
	output   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tenant-orchestrator",
	Short: "Tenant Orchestrator",
	Long:  `Tenant Orchestrator provisions, bills and reconciles hosted application tenants.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "http://localhost:8080", "Command API endpoint")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "Identity forwarded to the Command API")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (table or json)")
}

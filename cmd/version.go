// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/canonical/tenant-orchestrator/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the orchestrator version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("tenant-orchestrator %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

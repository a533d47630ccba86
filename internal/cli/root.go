// SPDX-License-Identifier: EPL-2.0

// Package cli holds the audvox commands.
package cli

import (
	"github.com/spf13/cobra"
)

// Command returns the root command with every subcommand attached.
func Command() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "audvox",
		Short:        "Voice-limited bus mixing for sound effects",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "audvox.yaml", "Path to the configuration file")

	root.AddCommand(
		simulateCommand(&configPath),
		inspectCommand(&configPath),
	)

	return root
}

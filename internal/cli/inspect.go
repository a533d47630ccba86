// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"github.com/spf13/cobra"

	"github.com/ik5/audvox/config"
)

func inspectCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the resolved configuration",
		Long:  "Load the configuration with defaults and environment overrides applied, validate it and print it as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return cfg.Dump(cmd.OutOrStdout())
		},
	}
}

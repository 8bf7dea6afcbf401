// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// envVars are the environment variables that override the config file.
var envVars = []string{"SEMED_CATALOG", "SEMED_OUTPUT_FORMAT", "SEMED_INPUT_FORMAT"}

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage semed configuration",
		Long:  `Commands for viewing and clearing semed configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

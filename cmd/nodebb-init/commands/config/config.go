// Package config implements the `config` command group.
package config

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for configuration inspection.
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the resolved bootstrap configuration",
}

func init() {
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(schemaCmd)
}

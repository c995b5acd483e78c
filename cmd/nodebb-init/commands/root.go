// Package commands implements the CLI commands for the NodeBB container
// bootstrap.
package commands

import (
	configcmd "github.com/NavyStack/node-bb-docker/cmd/nodebb-init/commands/config"
	"github.com/spf13/cobra"
)

// Version information injected at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
// A container entrypoint is usually invoked bare, so the root runs the full
// bootstrap pipeline.
var rootCmd = &cobra.Command{
	Use:   "nodebb-init",
	Short: "NodeBB container bootstrap",
	Long: `nodebb-init is the container entrypoint for the NodeBB forum image.

It reconciles the runtime user identity, prepares the persistent
configuration directory, unifies package manager lockfiles between the
source tree and the config volume, installs dependencies, and then either
runs the first-time installation, an explicit setup session, or starts the
forum.

All behavior is driven by environment variables (CONFIG_DIR, SETUP,
PACKAGE_MANAGER, START_BUILD, ...); run "nodebb-init config show" to see
the resolved values.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRun,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configcmd.Cmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

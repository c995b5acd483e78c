package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NavyStack/node-bb-docker/internal/cli/prompt"
	"github.com/NavyStack/node-bb-docker/pkg/bootstrap"
)

var setupYes bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run an interactive forum setup session",
	Long: `Run the bootstrap pipeline and finish with an interactive forum setup
session, regardless of whether a config.json already exists.

Equivalent to running the entrypoint with the SETUP environment variable
set. When a config.json is already present you are asked to confirm, since
setup will rewrite it; pass --yes to skip the prompt.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.ConfigFile()); err == nil {
		ok, err := prompt.ConfirmWithForce(
			fmt.Sprintf("%s already exists; setup will rewrite it. Continue?", cfg.ConfigFile()),
			setupYes)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	// Force the setup branch; it has top priority in the dispatcher.
	cfg.Setup = "1"

	return bootstrap.Run(cfg, bootstrap.NewOSRunner())
}

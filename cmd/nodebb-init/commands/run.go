package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NavyStack/node-bb-docker/internal/logger"
	"github.com/NavyStack/node-bb-docker/pkg/bootstrap"
	"github.com/NavyStack/node-bb-docker/pkg/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full bootstrap pipeline",
	Long: `Run the full bootstrap pipeline. This is also what a bare "nodebb-init"
invocation does.

The pipeline is strictly sequential: identity reconciliation (root only),
directory guarantees, lockfile reconciliation, dependency installation, and
finally the lifecycle dispatch. The setup and install branches replace this
process with the forum's own subcommand; the start branch blocks in the
foreground for the lifetime of the container.`,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := bootstrap.Run(cfg, bootstrap.NewOSRunner()); err != nil {
		logger.Error("bootstrap failed", logger.Err(err))
		return err
	}
	return nil
}

// loadConfig loads the environment configuration and initializes logging
// from it. Shared by every command that needs the resolved settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("configuration loaded",
		logger.KeyManager, cfg.PackageManager.String(),
		"config_dir", cfg.ConfigDir,
		"init_verb", cfg.InitVerb,
		"start_build", cfg.StartBuild)

	// Read but deliberately unused; kept for compatibility with images that
	// still set it.
	if cfg.OverrideUpdateLock {
		logger.Debug("OVERRIDE_UPDATE_LOCK is set but has no effect")
	}

	return cfg, nil
}

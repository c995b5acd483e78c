package bootstrap

import (
	"fmt"

	"github.com/NavyStack/node-bb-docker/internal/logger"
	"github.com/NavyStack/node-bb-docker/pkg/config"
)

// StartForum runs the normal forum start sequence in the foreground.
//
// When cfg.StartBuild is set the forum's build subcommand runs first and a
// build failure aborts the start; a failed build is never silently skipped.
// The start command then blocks for the remaining lifetime of the
// container.
func StartForum(cfg *config.Config, r Runner) error {
	if cfg.StartBuild {
		logger.Info("building forum before start")
		if err := r.Foreground(BuildAction(cfg)); err != nil {
			return fmt.Errorf("forum build failed: %w", err)
		}
	}

	logger.Info("starting forum",
		logger.KeyManager, cfg.PackageManager.String(),
		"config", cfg.ConfigFile())

	return r.Foreground(StartAction(cfg))
}

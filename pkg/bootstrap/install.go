package bootstrap

import (
	"github.com/NavyStack/node-bb-docker/internal/logger"
	"github.com/NavyStack/node-bb-docker/pkg/config"
)

// Install runs the configured package manager's install command in the
// application directory. A nonzero exit is fatal; there is no retry and no
// partial-success handling. The manager is validated here independently of
// the lockfile reconciler so a bad configuration fails at whichever step
// reaches it first.
func Install(cfg *config.Config, r Runner) error {
	mgr := cfg.PackageManager
	if !mgr.IsValid() {
		return &ConfigurationError{Reason: "unsupported package manager " + string(mgr)}
	}

	logger.Info("installing dependencies", logger.KeyManager, mgr.String())

	return r.Foreground(Action{
		Kind: RunForeground,
		Args: mgr.InstallArgs(),
		Dir:  cfg.AppDir,
	})
}

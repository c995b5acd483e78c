// Package bootstrap implements the container start pipeline: identity
// reconciliation, directory guarantees, lockfile reconciliation, dependency
// installation and the lifecycle dispatch.
//
// The pipeline is strictly sequential and runs once per container start.
// Every error is fatal and propagates to the top-level command handler; no
// step retries or recovers locally.
package bootstrap

import (
	"github.com/NavyStack/node-bb-docker/internal/logger"
	"github.com/NavyStack/node-bb-docker/pkg/config"
)

// Run executes the full bootstrap pipeline against the given runner.
//
// The setup and install branches replace the process image and never
// return; the start branch blocks in the foreground until the forum exits.
func Run(cfg *config.Config, r Runner) error {
	if err := ReconcileIdentity(cfg, r); err != nil {
		return err
	}

	if err := EnsureDir(cfg.ConfigDir); err != nil {
		return err
	}
	if err := EnsureDir(cfg.LogDir()); err != nil {
		return err
	}

	if err := ReconcileLockfiles(cfg.AppDir, cfg.ConfigDir, cfg.PackageManager); err != nil {
		return err
	}

	if err := Install(cfg, r); err != nil {
		return err
	}

	decision := Dispatch(cfg)
	logger.Info("lifecycle decision", "branch", decision.String())

	switch decision {
	case DecisionSetup:
		return r.Replace(SetupAction(cfg))
	case DecisionInstall:
		return r.Replace(InstallAction(cfg))
	default:
		return StartForum(cfg, r)
	}
}

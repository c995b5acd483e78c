package bootstrap

import (
	"os"
	"path/filepath"

	"github.com/NavyStack/node-bb-docker/pkg/config"
)

// nodebbBin is the forum's own command-line entry inside the source tree.
const nodebbBin = "./nodebb"

// Decision is the lifecycle branch chosen for this container start.
type Decision int

const (
	// DecisionSetup replaces the process with an interactive setup session.
	DecisionSetup Decision = iota
	// DecisionStart runs the normal forum start (optionally building first).
	DecisionStart
	// DecisionInstall replaces the process with the first-run installation.
	DecisionInstall
)

func (d Decision) String() string {
	switch d {
	case DecisionSetup:
		return "setup"
	case DecisionStart:
		return "start"
	default:
		return "install"
	}
}

// Dispatch picks the lifecycle branch. The priority order is fixed:
//
//  1. A requested setup session wins over everything, even an existing
//     config file.
//  2. An existing config file means the forum is installed; start it.
//  3. Otherwise this is a fresh container; run the configured init verb.
func Dispatch(cfg *config.Config) Decision {
	if cfg.Setup != "" {
		return DecisionSetup
	}
	if fileExists(cfg.ConfigFile()) {
		return DecisionStart
	}
	return DecisionInstall
}

// SetupAction returns the process-replacement action for the setup session.
func SetupAction(cfg *config.Config) Action {
	return Action{
		Kind: ReplaceProcess,
		Args: []string{nodebbBin, "setup", "--config=" + cfg.ConfigFile()},
		Dir:  cfg.AppDir,
	}
}

// InstallAction returns the process-replacement action for the first-run
// installation session, using the configured init verb.
func InstallAction(cfg *config.Config) Action {
	return Action{
		Kind: ReplaceProcess,
		Args: []string{nodebbBin, cfg.InitVerb, "--config=" + cfg.ConfigFile()},
		Dir:  cfg.AppDir,
	}
}

// BuildAction returns the foreground action for the pre-start build.
func BuildAction(cfg *config.Config) Action {
	return Action{
		Kind: RunForeground,
		Args: []string{nodebbBin, "build", "--config=" + cfg.ConfigFile()},
		Dir:  cfg.AppDir,
	}
}

// StartAction returns the foreground action that runs the forum for the
// remaining lifetime of the container.
func StartAction(cfg *config.Config) Action {
	return Action{
		Kind: RunForeground,
		Args: cfg.PackageManager.StartArgs(cfg.ConfigFile()),
		Dir:  cfg.AppDir,
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(filepath.Clean(path))
	return err == nil && !info.IsDir()
}

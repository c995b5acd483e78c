// Package pkgmanager models the closed set of Node.js package managers the
// bootstrap supports and the invocations derived from each of them.
//
// Every place that needs a lock file name, an install command, or a start
// command resolves it through the capability methods on Manager instead of
// re-branching on raw strings.
package pkgmanager

import (
	"fmt"
	"strings"
)

// Manager identifies a supported Node.js package manager.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
)

// Parse converts a configuration string into a Manager.
// Matching is case-insensitive. An unrecognized value is an error; callers
// treat it as a fatal configuration problem.
func Parse(s string) (Manager, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "npm":
		return NPM, nil
	case "yarn":
		return Yarn, nil
	case "pnpm":
		return PNPM, nil
	default:
		return "", fmt.Errorf("unsupported package manager %q (valid: npm, yarn, pnpm)", s)
	}
}

// String returns the manager's binary name.
func (m Manager) String() string {
	return string(m)
}

// IsValid reports whether m is one of the supported managers.
func (m Manager) IsValid() bool {
	switch m {
	case NPM, Yarn, PNPM:
		return true
	default:
		return false
	}
}

// Lockfile returns the lock file name the manager maintains.
func (m Manager) Lockfile() string {
	switch m {
	case Yarn:
		return "yarn.lock"
	case PNPM:
		return "pnpm-lock.yaml"
	default:
		return "package-lock.json"
	}
}

// Lockfiles returns every lock file variant a source tree may contain.
// The reconciler removes all of them before relinking the active one, so a
// package-manager switch never leaves a stale alternate behind.
func Lockfiles() []string {
	return []string{"yarn.lock", "package-lock.json", "pnpm-lock.yaml"}
}

// InstallArgs returns the argv for the manager's install command.
func (m Manager) InstallArgs() []string {
	return []string{string(m), "install"}
}

// StartArgs returns the argv for starting the forum through the manager's
// start script. npm and pnpm need the "--" separator to forward arguments to
// the script; yarn passes them through directly.
func (m Manager) StartArgs(configPath string) []string {
	args := []string{string(m), "start"}
	if m != Yarn {
		args = append(args, "--")
	}
	return append(args, "--config="+configPath, "--no-silent", "--no-daemon")
}

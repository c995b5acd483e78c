package bootstrap

import (
	"io"
	"os"
	"path/filepath"

	"github.com/NavyStack/node-bb-docker/internal/logger"
	"github.com/NavyStack/node-bb-docker/pkg/pkgmanager"
)

const manifestName = "package.json"

// ReconcileLockfiles unifies the package descriptor pair (package.json and
// the manager's lock file) between the application source tree and the
// persistent configuration directory.
//
// After a successful call:
//   - the config directory holds the authoritative copies,
//   - the source tree's manifest and lock file are symlinks into configDir,
//   - exactly one lock file variant exists in the source tree.
//
// The operation has side effects but is convergent: repeated calls produce
// the same end state.
func ReconcileLockfiles(sourceDir, configDir string, mgr pkgmanager.Manager) error {
	if !mgr.IsValid() {
		return &ConfigurationError{Reason: "unsupported package manager " + string(mgr)}
	}

	descriptors := []string{manifestName, mgr.Lockfile()}

	// Copy source -> config for any descriptor not already backed by the
	// persistent copy. A descriptor missing from the source tree is left
	// alone; the symlink step below still points it at the config copy.
	for _, name := range descriptors {
		src := filepath.Join(sourceDir, name)
		dst := filepath.Join(configDir, name)

		same, err := sameFile(src, dst)
		if err != nil {
			return err
		}
		if same {
			continue
		}
		if _, err := os.Stat(src); os.IsNotExist(err) {
			logger.Debug("descriptor missing from source tree, keeping persisted copy", logger.Path(src))
			continue
		}
		if err := copyFile(src, dst); err != nil {
			return err
		}
		logger.Info("persisted package descriptor", logger.Path(dst))
	}

	// Drop every lock file variant from the source tree; a prior run with a
	// different package manager may have left an alternate behind.
	for _, lock := range pkgmanager.Lockfiles() {
		path := filepath.Join(sourceDir, lock)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return &FilesystemError{Op: "remove", Path: path, Err: err}
		}
	}

	// Relink the source tree at the persistent copies.
	for _, name := range descriptors {
		src := filepath.Join(sourceDir, name)
		dst := filepath.Join(configDir, name)
		if err := replaceWithSymlink(dst, src); err != nil {
			return err
		}
	}

	logger.Info("lockfiles reconciled",
		logger.KeyManager, mgr.String(),
		"lockfile", mgr.Lockfile(),
		"config_dir", configDir)
	return nil
}

// sameFile reports whether the two paths refer to the same underlying file,
// following symlinks. Either path missing means "not the same".
func sameFile(a, b string) (bool, error) {
	ai, err := os.Stat(a)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &FilesystemError{Op: "stat", Path: a, Err: err}
	}
	bi, err := os.Stat(b)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &FilesystemError{Op: "stat", Path: b, Err: err}
	}
	return os.SameFile(ai, bi), nil
}

// copyFile copies src over dst, truncating any existing dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &FilesystemError{Op: "open", Path: src, Err: err}
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &FilesystemError{Op: "create", Path: dst, Err: err}
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return &FilesystemError{Op: "copy", Path: dst, Err: err}
	}
	if err := out.Close(); err != nil {
		return &FilesystemError{Op: "close", Path: dst, Err: err}
	}
	return nil
}

// replaceWithSymlink puts a symlink to target at linkPath, removing whatever
// occupied that path before.
func replaceWithSymlink(target, linkPath string) error {
	if err := os.Remove(linkPath); err != nil && !os.IsNotExist(err) {
		return &FilesystemError{Op: "remove", Path: linkPath, Err: err}
	}
	if err := os.Symlink(target, linkPath); err != nil {
		return &FilesystemError{Op: "symlink", Path: linkPath, Err: err}
	}
	return nil
}

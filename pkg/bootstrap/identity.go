package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"syscall"

	"github.com/NavyStack/node-bb-docker/internal/logger"
	"github.com/NavyStack/node-bb-docker/pkg/config"
)

// ReconcileIdentity runs the root-only identity phase.
//
// When the bootstrap starts as root it optionally remaps the service
// account's UID/GID to caller-supplied values, fixes ownership of the home,
// application and configuration directories, and then re-executes the same
// binary under the unprivileged service identity. The privilege drop is a
// one-way transition: the re-executed process cannot regain root.
//
// When the process is already unprivileged (including the re-executed run)
// this is a no-op.
func ReconcileIdentity(cfg *config.Config, r Runner) error {
	if os.Geteuid() != 0 {
		return nil
	}

	uid := cfg.ContainerUserID
	gid := cfg.ContainerGroupID

	if cfg.HasRemapUID() || cfg.HasRemapGID() {
		if cfg.HasRemapUID() {
			uid = cfg.RemapUID
		}
		if cfg.HasRemapGID() {
			gid = cfg.RemapGID
		}
		if err := remapServiceAccount(cfg.ContainerUser, uid, gid, r); err != nil {
			return err
		}
		logger.Info("remapped service identity",
			logger.KeyUser, cfg.ContainerUser,
			logger.UID(uid),
			logger.GID(gid))
	} else {
		logger.Info("no UID/GID supplied, using default service identity",
			logger.KeyUser, cfg.ContainerUser,
			logger.UID(uid),
			logger.GID(gid))
	}

	for _, dir := range []string{cfg.HomeDir(), cfg.AppDir, cfg.ConfigDir} {
		if err := ensureOwned(dir, uid, gid); err != nil {
			return err
		}
	}

	return dropPrivileges(cfg, uid, gid)
}

// remapServiceAccount rewrites the service account's UID and its group's
// GID through the system account tools. -o permits reusing an ID already
// present in passwd/group, which is common when the caller mirrors a host
// user.
func remapServiceAccount(user string, uid, gid int, r Runner) error {
	if err := r.Foreground(Action{
		Kind: RunForeground,
		Args: []string{"groupmod", "-o", "-g", strconv.Itoa(gid), user},
	}); err != nil {
		return err
	}
	return r.Foreground(Action{
		Kind: RunForeground,
		Args: []string{"usermod", "-o", "-u", strconv.Itoa(uid), user},
	})
}

// ensureOwned creates dir if absent and hands it to the service identity
// with mode 0700. MkdirAll only applies the mode to directories it creates,
// so pre-existing directories are chmodded explicitly.
func ensureOwned(dir string, uid, gid int) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return &FilesystemError{Op: "create", Path: dir, Err: err}
	}
	if err := os.Chmod(dir, 0o700); err != nil {
		return &FilesystemError{Op: "chmod", Path: dir, Err: err}
	}
	if err := os.Chown(dir, uid, gid); err != nil {
		return &FilesystemError{Op: "chown", Path: dir, Err: err}
	}
	return nil
}

// dropPrivileges switches the process credentials to the service identity
// and re-executes the same binary with the same arguments. The re-executed
// process resumes the pipeline from the top; ReconcileIdentity no-ops there
// because the effective UID is no longer 0.
func dropPrivileges(cfg *config.Config, uid, gid int) error {
	logger.Info("dropping privileges and re-executing",
		logger.KeyUser, cfg.ContainerUser,
		logger.UID(uid),
		logger.GID(gid))

	if err := syscall.Setgroups([]int{gid}); err != nil {
		return fmt.Errorf("setgroups(%d): %w", gid, err)
	}
	if err := syscall.Setgid(gid); err != nil {
		return fmt.Errorf("setgid(%d): %w", gid, err)
	}
	if err := syscall.Setuid(uid); err != nil {
		return fmt.Errorf("setuid(%d): %w", uid, err)
	}

	_ = os.Setenv("HOME", cfg.HomeDir())
	_ = os.Setenv("USER", cfg.ContainerUser)

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve own executable: %w", err)
	}

	if err := syscall.Exec(exe, os.Args, os.Environ()); err != nil {
		return &SubprocessError{Command: os.Args, Err: err}
	}
	return nil // unreachable
}

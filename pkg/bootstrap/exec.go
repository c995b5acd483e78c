package bootstrap

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"github.com/NavyStack/node-bb-docker/internal/logger"
)

// OSRunner executes actions against the real operating system.
type OSRunner struct{}

// NewOSRunner returns the production Runner.
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

// Foreground runs the command synchronously, wiring the child to the
// container's stdio so interactive sessions and forum output pass through.
func (r *OSRunner) Foreground(a Action) error {
	if len(a.Args) == 0 {
		return &SubprocessError{Err: errors.New("empty command")}
	}

	logger.Debug("running command", logger.KeyCommand, a.Args, "dir", a.Dir)

	cmd := exec.Command(a.Args[0], a.Args[1:]...)
	cmd.Dir = a.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &SubprocessError{Command: a.Args, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &SubprocessError{Command: a.Args, Err: err}
	}
	return nil
}

// Replace swaps the current process image for the command. On success this
// never returns; the replacement process inherits the environment and the
// container's exit code is whatever it exits with.
func (r *OSRunner) Replace(a Action) error {
	if len(a.Args) == 0 {
		return &SubprocessError{Err: errors.New("empty command")}
	}

	path, err := resolveCommand(a)
	if err != nil {
		return err
	}

	logger.Debug("replacing process", logger.KeyCommand, a.Args)

	if err := syscall.Exec(path, a.Args, os.Environ()); err != nil {
		return &SubprocessError{Command: a.Args, Err: err}
	}
	return nil // unreachable
}

// resolveCommand enters the action's working directory and then resolves
// argv[0]. The chdir must happen first: the forum is addressed as ./nodebb,
// which only exists relative to the action's Dir, not wherever the
// entrypoint happened to be invoked from.
func resolveCommand(a Action) (string, error) {
	if a.Dir != "" {
		if err := os.Chdir(a.Dir); err != nil {
			return "", &FilesystemError{Op: "chdir", Path: a.Dir, Err: err}
		}
	}

	path, err := exec.LookPath(a.Args[0])
	if err != nil {
		return "", &SubprocessError{Command: a.Args, Err: err}
	}
	return path, nil
}

package bootstrap

import (
	"fmt"
	"strings"
)

// The bootstrap error taxonomy. Every failure in the pipeline is one of
// these three kinds, and all of them are fatal: the top-level command
// handler logs the message and exits nonzero. There is no retry or
// partial-success path anywhere in the pipeline.

// ConfigurationError reports an invalid or unusable configuration value,
// such as an unrecognized package manager.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// FilesystemError reports a fatal filesystem operation failure.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("filesystem error: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("filesystem error: %s %s", e.Op, e.Path)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// SubprocessError reports a child process that could not be started, could
// not replace the current process, or exited nonzero.
type SubprocessError struct {
	Command  []string
	ExitCode int
	Err      error
}

func (e *SubprocessError) Error() string {
	cmd := strings.Join(e.Command, " ")
	if e.ExitCode > 0 {
		return fmt.Sprintf("command %q exited with code %d", cmd, e.ExitCode)
	}
	return fmt.Sprintf("command %q failed: %v", cmd, e.Err)
}

func (e *SubprocessError) Unwrap() error { return e.Err }

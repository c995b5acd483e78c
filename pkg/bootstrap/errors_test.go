package bootstrap

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	err := &ConfigurationError{Reason: "unsupported package manager bower"}
	assert.Equal(t, "configuration error: unsupported package manager bower", err.Error())
	assert.Nil(t, errors.Unwrap(err))

	wrapped := &ConfigurationError{Reason: "bad value", Err: os.ErrInvalid}
	assert.Contains(t, wrapped.Error(), "bad value")
	assert.True(t, errors.Is(wrapped, os.ErrInvalid))
}

func TestFilesystemError(t *testing.T) {
	err := &FilesystemError{Op: "symlink", Path: "/usr/src/app/package.json", Err: os.ErrPermission}
	assert.Equal(t, "filesystem error: symlink /usr/src/app/package.json: permission denied", err.Error())
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestSubprocessError(t *testing.T) {
	exited := &SubprocessError{Command: []string{"npm", "install"}, ExitCode: 1}
	assert.Equal(t, `command "npm install" exited with code 1`, exited.Error())

	failed := &SubprocessError{Command: []string{"./nodebb", "setup"}, Err: os.ErrNotExist}
	assert.Contains(t, failed.Error(), `command "./nodebb setup" failed`)
	assert.True(t, errors.Is(failed, os.ErrNotExist))
}

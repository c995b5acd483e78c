package bootstrap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCommandRelativeToActionDir(t *testing.T) {
	appDir := t.TempDir()
	stub := filepath.Join(appDir, "nodebb")
	require.NoError(t, os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755))

	// The entrypoint's own cwd must not matter for ./nodebb resolution.
	t.Chdir(t.TempDir())

	path, err := resolveCommand(Action{
		Args: []string{"./nodebb", "setup", "--config=/opt/config/config.json"},
		Dir:  appDir,
	})
	require.NoError(t, err)
	assert.Equal(t, "./nodebb", path)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, appDir, cwd, "process must be left inside the action dir for the exec")
}

func TestResolveCommandMissingBinary(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := resolveCommand(Action{Args: []string{"./nodebb", "setup"}, Dir: t.TempDir()})
	require.Error(t, err)

	var subErr *SubprocessError
	assert.True(t, errors.As(err, &subErr))
}

func TestResolveCommandBadDir(t *testing.T) {
	_, err := resolveCommand(Action{
		Args: []string{"./nodebb", "setup"},
		Dir:  filepath.Join(t.TempDir(), "does-not-exist"),
	})
	require.Error(t, err)

	var fsErr *FilesystemError
	require.True(t, errors.As(err, &fsErr))
	assert.Equal(t, "chdir", fsErr.Op)
}

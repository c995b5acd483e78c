package bootstrap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileIdentityNoopWithoutRoot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("requires an unprivileged test run")
	}

	cfg := testConfig(t, false)
	cfg.RemapUID = 1500
	cfg.RemapGID = 1500
	r := &fakeRunner{}

	require.NoError(t, ReconcileIdentity(cfg, r))

	// Without root there is nothing to remap, chown, or re-exec.
	assert.Empty(t, r.foreground)
	assert.Empty(t, r.replaced)
}

func TestRemapServiceAccountCommands(t *testing.T) {
	r := &fakeRunner{}

	require.NoError(t, remapServiceAccount("nodebb", 1500, 1501, r))

	// The group is rewritten before the user, both with -o so an ID that
	// already exists in passwd/group can be reused.
	require.Len(t, r.foreground, 2)
	assert.Equal(t, []string{"groupmod", "-o", "-g", "1501", "nodebb"}, r.foreground[0].Args)
	assert.Equal(t, []string{"usermod", "-o", "-u", "1500", "nodebb"}, r.foreground[1].Args)
}

func TestRemapServiceAccountGroupFailureStops(t *testing.T) {
	modErr := &SubprocessError{Command: []string{"groupmod"}, ExitCode: 4}
	r := &fakeRunner{
		failWhen: func(a Action) bool { return a.Command() == "groupmod" },
		failErr:  modErr,
	}

	err := remapServiceAccount("nodebb", 1500, 1501, r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, modErr))

	require.Len(t, r.foreground, 1, "usermod must not run after groupmod fails")
}

func TestEnsureOwnedTightensMode(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("requires an unprivileged test run")
	}

	dir := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.Mkdir(dir, 0o755))

	// chown to our own identity is permitted without privileges.
	require.NoError(t, ensureOwned(dir, os.Getuid(), os.Getgid()))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm(), "pre-existing dirs are tightened too")
}

func TestEnsureOwnedCreatesMissing(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("requires an unprivileged test run")
	}

	dir := filepath.Join(t.TempDir(), "nested", "home")
	require.NoError(t, ensureOwned(dir, os.Getuid(), os.Getgid()))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

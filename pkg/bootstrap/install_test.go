package bootstrap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavyStack/node-bb-docker/pkg/pkgmanager"
)

func TestInstallRunsManagerInAppDir(t *testing.T) {
	cfg := testConfig(t, false)
	cfg.PackageManager = pkgmanager.PNPM
	r := &fakeRunner{}

	require.NoError(t, Install(cfg, r))

	require.Len(t, r.foreground, 1)
	got := r.foreground[0]
	assert.Equal(t, RunForeground, got.Kind)
	assert.Equal(t, []string{"pnpm", "install"}, got.Args)
	assert.Equal(t, cfg.AppDir, got.Dir)
}

func TestInstallRejectsUnknownManager(t *testing.T) {
	cfg := testConfig(t, false)
	cfg.PackageManager = pkgmanager.Manager("bower")
	r := &fakeRunner{}

	err := Install(cfg, r)
	require.Error(t, err)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
	assert.Empty(t, r.foreground, "nothing must run with a bad manager")
}

func TestInstallFailureIsFatal(t *testing.T) {
	cfg := testConfig(t, false)

	installErr := &SubprocessError{Command: []string{"npm", "install"}, ExitCode: 1}
	r := &fakeRunner{
		failWhen: func(a Action) bool { return true },
		failErr:  installErr,
	}

	err := Install(cfg, r)
	assert.True(t, errors.Is(err, installErr))
}

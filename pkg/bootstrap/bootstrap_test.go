package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NavyStack/node-bb-docker/pkg/config"
)

// pipelineConfig builds a full pipeline fixture: an application tree with
// the package descriptor pair and an empty persistent config directory.
func pipelineConfig(t *testing.T) *config.Config {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("identity reconciliation would modify the system account as root")
	}

	cfg := testConfig(t, false)
	writeFile(t, cfg.AppDir, "package.json", `{"name":"nodebb"}`)
	writeFile(t, cfg.AppDir, "package-lock.json", `{"lockfileVersion":3}`)
	return cfg
}

func TestRunFreshContainerReplacesWithInitVerb(t *testing.T) {
	cfg := pipelineConfig(t)
	r := &fakeRunner{}

	require.NoError(t, Run(cfg, r))

	// Dependencies were installed in the foreground first.
	require.Len(t, r.foreground, 1)
	assert.Equal(t, []string{"npm", "install"}, r.foreground[0].Args)

	// Then the process image is handed to the forum's init verb.
	require.Len(t, r.replaced, 1)
	assert.Equal(t, InstallAction(cfg), r.replaced[0])
}

func TestRunSetupWinsOverInstalledForum(t *testing.T) {
	cfg := pipelineConfig(t)
	cfg.Setup = "1"
	require.NoError(t, os.WriteFile(cfg.ConfigFile(), []byte(`{}`), 0o644))
	r := &fakeRunner{}

	require.NoError(t, Run(cfg, r))

	require.Len(t, r.replaced, 1)
	assert.Equal(t, SetupAction(cfg), r.replaced[0])
}

func TestRunInstalledForumStarts(t *testing.T) {
	cfg := pipelineConfig(t)
	require.NoError(t, os.WriteFile(cfg.ConfigFile(), []byte(`{}`), 0o644))
	r := &fakeRunner{}

	require.NoError(t, Run(cfg, r))

	assert.Empty(t, r.replaced)
	require.Len(t, r.foreground, 2)
	assert.Equal(t, []string{"npm", "install"}, r.foreground[0].Args)
	assert.Equal(t, StartAction(cfg), r.foreground[1])
}

func TestRunInstalledForumBuildsWhenRequested(t *testing.T) {
	cfg := pipelineConfig(t)
	cfg.StartBuild = true
	require.NoError(t, os.WriteFile(cfg.ConfigFile(), []byte(`{}`), 0o644))
	r := &fakeRunner{}

	require.NoError(t, Run(cfg, r))

	require.Len(t, r.foreground, 3)
	assert.Equal(t, []string{"npm", "install"}, r.foreground[0].Args)
	assert.Equal(t, BuildAction(cfg), r.foreground[1])
	assert.Equal(t, StartAction(cfg), r.foreground[2])
}

func TestRunGuaranteesDirectories(t *testing.T) {
	cfg := pipelineConfig(t)
	// Point the config dir at a path that does not exist yet.
	cfg.ConfigDir = filepath.Join(t.TempDir(), "persist", "config")
	r := &fakeRunner{}

	require.NoError(t, Run(cfg, r))

	for _, dir := range []string{cfg.ConfigDir, cfg.LogDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "dir %s", dir)
		assert.True(t, info.IsDir())
	}
}

func TestRunReconcilesDescriptors(t *testing.T) {
	cfg := pipelineConfig(t)
	r := &fakeRunner{}

	require.NoError(t, Run(cfg, r))

	assert.True(t, isSymlinkTo(t,
		filepath.Join(cfg.AppDir, "package.json"),
		filepath.Join(cfg.ConfigDir, "package.json")))
	assert.True(t, isSymlinkTo(t,
		filepath.Join(cfg.AppDir, "package-lock.json"),
		filepath.Join(cfg.ConfigDir, "package-lock.json")))
}

func TestRunFailsFastOnInstallError(t *testing.T) {
	cfg := pipelineConfig(t)
	installErr := &SubprocessError{Command: []string{"npm", "install"}, ExitCode: 1}
	r := &fakeRunner{
		failWhen: func(a Action) bool { return a.Command() == "npm" },
		failErr:  installErr,
	}

	err := Run(cfg, r)
	require.Error(t, err)
	assert.Empty(t, r.replaced, "the lifecycle branch must not run after a failed install")
}

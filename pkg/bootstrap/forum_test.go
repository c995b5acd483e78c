package bootstrap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartForumWithoutBuild(t *testing.T) {
	cfg := testConfig(t, true)
	r := &fakeRunner{}

	require.NoError(t, StartForum(cfg, r))

	require.Len(t, r.foreground, 1, "no build step when START_BUILD is off")
	assert.Equal(t, StartAction(cfg), r.foreground[0])
	assert.Empty(t, r.replaced)
}

func TestStartForumBuildsFirst(t *testing.T) {
	cfg := testConfig(t, true)
	cfg.StartBuild = true
	r := &fakeRunner{}

	require.NoError(t, StartForum(cfg, r))

	require.Len(t, r.foreground, 2)
	assert.Equal(t, BuildAction(cfg), r.foreground[0])
	assert.Equal(t, StartAction(cfg), r.foreground[1])
}

func TestStartForumBuildFailureAbortsStart(t *testing.T) {
	cfg := testConfig(t, true)
	cfg.StartBuild = true

	buildErr := &SubprocessError{Command: []string{"./nodebb", "build"}, ExitCode: 1}
	r := &fakeRunner{
		failWhen: func(a Action) bool { return len(a.Args) > 1 && a.Args[1] == "build" },
		failErr:  buildErr,
	}

	err := StartForum(cfg, r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forum build failed")
	assert.True(t, errors.Is(err, buildErr))

	require.Len(t, r.foreground, 1, "start must not run after a failed build")
}

func TestStartForumPropagatesStartFailure(t *testing.T) {
	cfg := testConfig(t, true)

	startErr := &SubprocessError{Command: []string{"npm", "start"}, ExitCode: 2}
	r := &fakeRunner{
		failWhen: func(a Action) bool { return a.Command() == "npm" },
		failErr:  startErr,
	}

	err := StartForum(cfg, r)
	assert.True(t, errors.Is(err, startErr))
}

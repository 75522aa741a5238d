package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLaunchTUI(t *testing.T) *[]*app.Container {
	t.Helper()
	var launched []*app.Container
	prev := launchTUIFunc
	launchTUIFunc = func(c *app.Container) error {
		launched = append(launched, c)
		return nil
	}
	t.Cleanup(func() { launchTUIFunc = prev })
	return &launched
}

func TestRootCommand_NoArgsLaunchesTUI(t *testing.T) {
	env := newTestEnv(t)
	launched := stubLaunchTUI(t)

	_, _, err := env.run(t)

	require.NoError(t, err)
	require.Len(t, *launched, 1)
	assert.NotNil(t, (*launched)[0].Store)
}

func TestRootCommand_TUISubcommand(t *testing.T) {
	env := newTestEnv(t)
	launched := stubLaunchTUI(t)

	_, _, err := env.run(t, "tui")

	require.NoError(t, err)
	assert.Len(t, *launched, 1)
}

func TestRootCommand_Version(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run(t, "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "1.2.3")
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	env := newTestEnv(t)
	stubLaunchTUI(t)
	logFile := filepath.Join(t.TempDir(), "todo.log")
	extra := filepath.Join(t.TempDir(), "extra.toml")
	require.NoError(t, os.WriteFile(extra, []byte("[tui]\nshow_help = false\n"), 0o600))

	_, _, err := env.run(t, "--log-level", "debug", "--log-file", logFile, "--config", extra)

	require.NoError(t, err)
	assert.Equal(t, "debug", env.lastOpts.LogLevel)
	assert.Equal(t, logFile, env.lastOpts.LogFile)
	assert.Equal(t, extra, env.lastOpts.ConfigPath)
}

func TestRootCommand_PrintsConfigWarnings(t *testing.T) {
	env := newTestEnv(t)
	stubLaunchTUI(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(env.workDir, domain.LocalConfigFileName),
		[]byte("[tui]\ntheme = \"dark\"\n"),
		0o600,
	))

	_, stderr, err := env.run(t)

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown key in [tui]: theme")
}

func TestRootCommand_InvalidConfigFails(t *testing.T) {
	env := newTestEnv(t)
	launched := stubLaunchTUI(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(env.workDir, domain.LocalConfigFileName),
		[]byte("[tui\n"),
		0o600,
	))

	_, _, err := env.run(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize")
	assert.Empty(t, *launched)
}

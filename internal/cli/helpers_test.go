package cli

import (
	"bytes"
	"testing"

	"github.com/runoshun/todo/internal/app"
)

// testEnv isolates config lookups for a command test.
type testEnv struct {
	workDir   string
	configDir string
	lastOpts  app.Options
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		workDir:   t.TempDir(),
		configDir: t.TempDir(),
	}
	t.Setenv("XDG_CONFIG_HOME", env.configDir)
	return env
}

// factory builds real containers rooted at the env's work directory.
func (e *testEnv) factory(opts app.Options) (*app.Container, error) {
	opts.WorkDir = e.workDir
	e.lastOpts = opts
	return app.New(opts)
}

// run executes the root command with args and returns stdout and stderr.
func (e *testEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(e.factory, "1.2.3")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const scenarioScript = `- add: Buy milk
- draft: Walk dog
- submit: true
- delete: 1
- add: Feed cat
`

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "steps.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReplayCommand_Text(t *testing.T) {
	env := newTestEnv(t)
	path := writeScript(t, scenarioScript)

	stdout, _, err := env.run(t, "replay", path)

	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Todo App",
		"",
		"  1. Walk dog",
		"  2. Feed cat",
		"",
		"You have 2 pending tasks",
		"Clear all: enabled",
		"",
		"Steps applied: 5",
		"",
	}, "\n"), stdout)
}

func TestReplayCommand_EditLeavesDraft(t *testing.T) {
	env := newTestEnv(t)
	path := writeScript(t, "- add: Walk dog\n- edit: 1\n")

	stdout, _, err := env.run(t, "replay", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "(no tasks)")
	assert.Contains(t, stdout, "Draft: Walk dog")
	assert.Contains(t, stdout, "You have 0 pending tasks")
	assert.Contains(t, stdout, "Clear all: disabled")
	assert.Contains(t, stdout, "Steps applied: 2")
}

func TestReplayCommand_NoOpStepsNotCounted(t *testing.T) {
	env := newTestEnv(t)
	path := writeScript(t, "- add: ~\n- submit: true\n- edit: 3\n- clear: true\n- add: one\n")

	stdout, _, err := env.run(t, "replay", path)

	require.NoError(t, err)
	assert.Contains(t, stdout, "  1. one")
	assert.NotContains(t, stdout, "Draft:")
	assert.Contains(t, stdout, "Steps applied: 1")
}

func TestReplayCommand_YAML(t *testing.T) {
	env := newTestEnv(t)
	path := writeScript(t, scenarioScript)

	stdout, _, err := env.run(t, "replay", "--seq-ids", "--format", "yaml", path)

	require.NoError(t, err)
	var board usecase.ShowBoardOutput
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &board))
	assert.Equal(t, []domain.Task{
		{ID: "2", Text: "Walk dog"},
		{ID: "3", Text: "Feed cat"},
	}, board.Tasks)
	assert.Equal(t, 2, board.Pending)
	assert.True(t, board.CanClearAll)
	assert.True(t, env.lastOpts.SeqIDs)
}

func TestReplayCommand_TOML(t *testing.T) {
	env := newTestEnv(t)
	path := writeScript(t, scenarioScript)

	stdout, _, err := env.run(t, "replay", "--seq-ids", "-f", "toml", path)

	require.NoError(t, err)
	var board usecase.ShowBoardOutput
	require.NoError(t, toml.Unmarshal([]byte(stdout), &board))
	require.Len(t, board.Tasks, 2)
	assert.Equal(t, domain.TaskID("2"), board.Tasks[0].ID)
	assert.Equal(t, 2, board.Pending)
}

func TestReplayCommand_Stdin(t *testing.T) {
	env := newTestEnv(t)
	root := NewRootCommand(env.factory, "test")
	var stdout strings.Builder
	root.SetOut(&stdout)
	root.SetIn(strings.NewReader("- add: from stdin\n"))
	root.SetArgs([]string{"replay", "-"})

	require.NoError(t, root.Execute())
	assert.Contains(t, stdout.String(), "1. from stdin")
}

func TestReplayCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown format",
			script:  "- add: x\n",
			args:    []string{"--format", "xml"},
			wantErr: `unknown format "xml"`,
		},
		{
			name:    "unknown op",
			script:  "- fly: away\n",
			wantErr: "unknown op",
		},
		{
			name:    "zero position",
			script:  "- delete: 0\n",
			wantErr: "position must be >= 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			path := writeScript(t, tt.script)

			args := append([]string{"replay"}, tt.args...)
			args = append(args, path)
			_, _, err := env.run(t, args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReplayCommand_MissingFile(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run(t, "replay", filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open script")
}

package cli

import (
	"bytes"
	"encoding/json"
	"fishing/game"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

func writeState(t *testing.T, state *game.GameState) string {
	data, err := json.Marshal(state)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestMoveCmd(t *testing.T) {
	state := game.NewGameState(10, 5, 0)
	state.Fish[0] = game.Fish{Position: game.Position{X: 1, Y: 4}, Value: 5}
	path := writeState(t, state)

	t.Run("prints the chosen action", func(t *testing.T) {
		out, err := run(t, "move", "--state", path, "--depth", "2")

		require.NoError(t, err)
		require.Equal(t, "right\n", out)
	})

	t.Run("verbose prints every legal action", func(t *testing.T) {
		out, err := run(t, "move", "--state", path, "--depth", "2", "-v")

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Equal(t, "right", lines[0])
		require.Len(t, lines, 5, "Action plus stay, down, left and right")
		require.True(t, strings.HasPrefix(lines[1], "stay\t"))
	})

	t.Run("nearest evaluator", func(t *testing.T) {
		out, err := run(t, "move", "--state", path, "--depth", "1", "--evaluator", "nearest")

		require.NoError(t, err)
		require.Equal(t, "right\n", out)
	})

	t.Run("missing state flag", func(t *testing.T) {
		_, err := run(t, "move")

		require.Error(t, err)
	})

	t.Run("unreadable state", func(t *testing.T) {
		_, err := run(t, "move", "--state", filepath.Join(t.TempDir(), "missing.json"))

		require.ErrorContains(t, err, "failed to open state")
	})

	t.Run("unknown evaluator", func(t *testing.T) {
		_, err := run(t, "move", "--state", path, "--evaluator", "material")

		require.ErrorContains(t, err, "unknown evaluator")
	})
}

func TestPlayCmd(t *testing.T) {
	t.Run("random opponent", func(t *testing.T) {
		out, err := run(t, "play", "--depth", "2", "--opponent", "random", "--turns", "5", "--seed", "4")

		require.NoError(t, err)
		require.Contains(t, out, "moves: ")
		require.Contains(t, out, "winner: ")
	})

	t.Run("search opponent", func(t *testing.T) {
		out, err := run(t, "play", "--depth", "1", "--opponent-depth", "1", "--turns", "3")

		require.NoError(t, err)
		require.Contains(t, out, "scores: ")
	})

	t.Run("invalid flags", func(t *testing.T) {
		_, err := run(t, "play", "--opponent", "human")
		require.ErrorContains(t, err, "unknown opponent")

		_, err = run(t, "play", "--fish", "1000")
		require.ErrorContains(t, err, "cannot place")
	})
}

func TestExperimentCmd(t *testing.T) {
	t.Run("baseline", func(t *testing.T) {
		out := t.TempDir()

		stdout, err := run(t, "experiment", "baseline", "--games", "1", "--turns", "2", "--out", out)

		require.NoError(t, err)
		dir := strings.TrimSpace(stdout)
		require.FileExists(t, filepath.Join(dir, "move_records.parquet"))
		require.True(t, strings.HasPrefix(dir, filepath.Join(out, "baseline")))
	})

	t.Run("unknown experiment", func(t *testing.T) {
		_, err := run(t, "experiment", "speedup", "--out", t.TempDir())

		require.ErrorContains(t, err, "unknown experiment")
	})

	t.Run("no games", func(t *testing.T) {
		_, err := run(t, "experiment", "baseline", "--games", "0", "--out", t.TempDir())

		require.Error(t, err)
	})
}

func TestLogging(t *testing.T) {
	_, err := run(t, "--log-level", "verbose", "move", "--state", "x")
	require.ErrorContains(t, err, "invalid log level")

	t.Setenv("FISHING_LOG_LEVEL", "warn")
	require.Equal(t, "warn", DefaultConfig().LogLevel)
}

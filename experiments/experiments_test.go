package experiments

import (
	"encoding/csv"
	"fishing/experiments/metrics"
	"fishing/game"
	"fishing/player"
	"fishing/searcher"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func smallOptions(t *testing.T) Options {
	return Options{
		Games: 2,
		Out:   t.TempDir(),
		Seed:  3,
		Board: game.Config{Width: 6, Height: 4, MaxTurns: 4, Fish: 3, MinValue: 1, MaxValue: 5},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunExperiment(t *testing.T) {
	t.Run("baseline writes every record file", func(t *testing.T) {
		opts := smallOptions(t)

		dir, err := Run("baseline", opts)

		require.NoError(t, err)
		require.Equal(t, filepath.Join(opts.Out, "baseline"), filepath.Dir(dir))
		for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv", "move_records.parquet"} {
			require.FileExists(t, filepath.Join(dir, file))
		}

		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 1+opts.Games, "Header plus one row per game")
		// Seats alternate between games
		require.Equal(t, []string{"0", "1"}, games[1][1:3])
		require.Equal(t, []string{"1", "0"}, games[2][1:3])

		moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
		rows, err := metrics.ReadMoveParquet(filepath.Join(dir, "move_records.parquet"))
		require.NoError(t, err)
		require.Len(t, rows, len(moves)-1, "Parquet and CSV should hold the same moves")
	})

	t.Run("evaluator", func(t *testing.T) {
		opts := smallOptions(t)

		dir := RunEvaluatorExperiment(opts)

		configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
		require.Equal(t, "opportunity", configs[1][2])
		require.Equal(t, "nearest", configs[2][2])
	})

	t.Run("depth", func(t *testing.T) {
		opts := smallOptions(t)
		opts.Games = 1

		dir := RunDepthExperiment(opts)

		games := readCSV(t, filepath.Join(dir, "game_records.csv"))
		require.Len(t, games, 1+4, "One game per match up")
	})

	t.Run("unknown experiment", func(t *testing.T) {
		_, err := Run("speedup", smallOptions(t))

		require.ErrorContains(t, err, "unknown experiment")
	})
}

func TestEvaluator(t *testing.T) {
	require.Equal(t, []string{"nearest", "opportunity"}, EvaluatorNames())
	require.Equal(t, []string{"baseline", "depth", "evaluator"}, Names())

	_, err := Evaluator("material")
	require.Error(t, err)

	evaluate, err := Evaluator("nearest")
	require.NoError(t, err)
	state := game.NewGameState(6, 4, 0)
	state.Score = [2]int{2, 0}
	require.Equal(t, 2.0, evaluate(state))
}

func TestCreateAgent(t *testing.T) {
	require.Panics(t, func() {
		createAgent(metrics.AgentConfig{Depth: 1, Evaluator: "material"}, 1)
	})
	require.IsType(t, &player.RandomPlayer{}, createAgent(metrics.AgentConfig{Random: true}, 1))
	require.IsType(t, &searcher.Selector{}, createAgent(metrics.AgentConfig{Depth: 2, Evaluator: "opportunity"}, 1))
}

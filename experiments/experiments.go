package experiments

import (
	"fishing/engine"
	"fishing/experiments/metrics"
	"fishing/game"
	"fishing/meta"
	"fishing/player"
	"fishing/searcher"
	"fishing/utils"
	"fmt"
	"maps"
	"slices"

	"github.com/rs/zerolog/log"
)

const NumGames = 30 // Per match up

type Options struct {
	Games int         // Per match up, seats alternate between games
	Out   string      // Root directory of the records
	Seed  uint64      // Board seed of the first game
	Board game.Config // Generated board of every game
}

func DefaultOptions() Options {
	return Options{
		Games: NumGames,
		Out:   "results",
		Seed:  1,
		Board: game.StandardConfig(),
	}
}

var evaluators = map[string]game.Evaluate{
	"opportunity": game.EvaluateOpportunity,
	"nearest":     game.EvaluateNearest,
}

// Evaluator looks up a heuristic by name.
func Evaluator(name string) (game.Evaluate, error) {
	evaluate, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("unknown evaluator %q, want one of %v", name, EvaluatorNames())
	}
	return evaluate, nil
}

func EvaluatorNames() []string {
	return slices.Sorted(maps.Keys(evaluators))
}

var runners = map[string]func(Options) string{
	"depth":     RunDepthExperiment,
	"evaluator": RunEvaluatorExperiment,
	"baseline":  RunBaselineExperiment,
}

// Run starts the named experiment and returns the directory of its records.
func Run(name string, opts Options) (string, error) {
	run, ok := runners[name]
	if !ok {
		return "", fmt.Errorf("unknown experiment %q, want one of %v", name, Names())
	}
	return run(opts), nil
}

func Names() []string {
	return slices.Sorted(maps.Keys(runners))
}

// RunDepthExperiment pairs a one ply searcher against deeper ones.
func RunDepthExperiment(opts Options) string {
	baseline := metrics.AgentConfig{ID: 0, Depth: 1, Evaluator: "opportunity", Deepening: true}
	depthConfigs := []metrics.AgentConfig{
		{ID: 1, Depth: 2, Evaluator: "opportunity", Deepening: true},
		{ID: 2, Depth: 3, Evaluator: "opportunity", Deepening: true},
		{ID: 3, Depth: meta.SEARCH_DEPTH, Evaluator: "opportunity", Deepening: true},
		{ID: 4, Depth: meta.SEARCH_DEPTH, Evaluator: "opportunity", Deepening: false},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", opts, append(depthConfigs, baseline), matchUps)
}

// RunEvaluatorExperiment pairs the opportunity heuristic against the nearest fish heuristic at equal depth.
func RunEvaluatorExperiment(opts Options) string {
	configs := []metrics.AgentConfig{
		{ID: 1, Depth: meta.SEARCH_DEPTH, Evaluator: "opportunity", Deepening: true},
		{ID: 2, Depth: meta.SEARCH_DEPTH, Evaluator: "nearest", Deepening: true},
	}
	matchUps := [][]metrics.AgentConfig{{configs[0], configs[1]}}

	return runExperiment("evaluator", opts, configs, matchUps)
}

// RunBaselineExperiment pairs the default searcher against the random player.
func RunBaselineExperiment(opts Options) string {
	configs := []metrics.AgentConfig{
		{ID: 0, Random: true},
		{ID: 1, Depth: meta.SEARCH_DEPTH, Evaluator: "opportunity", Deepening: true},
	}
	matchUps := [][]metrics.AgentConfig{{configs[0], configs[1]}}

	return runExperiment("baseline", opts, configs, matchUps)
}

func runExperiment(name string, opts Options, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) string {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < opts.Games; i++ {
			// Both seatings play the same board
			config1, config2 := matchup[0], matchup[1]
			if i%2 == 1 {
				config1, config2 = config2, config1
			}
			seed := opts.Seed + uint64(i/2)

			log.Debug().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, opts.Games)

			winner, gameMetric, moveMetrics := runGame(opts.Board, seed, config1, config2)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	return store(name, opts.Out, configs, gameRecords, moveRecords)
}

func store(name, out string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) string {
	writer, err := metrics.NewWriter(out, name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	err = writer.WriteMoveParquet(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move parquet: %v", err))
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer.Dir()
}

// runGame plays a single game on a board generated from seed and returns the winner
func runGame(board game.Config, seed uint64, config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric) {
	players := []string{agentName(config1), agentName(config2)}
	agents := []engine.Agent{
		createAgent(config1, seed),
		createAgent(config2, seed+1),
	}
	state := game.Generate(board, utils.NewRandom(seed))
	e := engine.LocalEngine(players, agents, state)

	return e.Run()
}

func agentName(config metrics.AgentConfig) string {
	return fmt.Sprintf("agent%d", config.ID)
}

// createAgent builds the agent described by config. Seeds only matter for random choices.
func createAgent(config metrics.AgentConfig, seed uint64) engine.Agent {
	random := utils.NewRandom(seed)
	if config.Random {
		return player.NewRandomPlayer(random)
	}

	evaluate, err := Evaluator(config.Evaluator)
	if err != nil {
		panic(err)
	}
	return searcher.NewSelector(
		searcher.WithDepth(config.Depth),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithIterativeDeepening(config.Deepening),
		searcher.WithRandom(random),
		searcher.WithMetrics(),
	)
}

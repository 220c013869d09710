package cli

import (
	"fishing/engine"
	"fishing/experiments"
	"fishing/game"
	"fishing/meta"
	"fishing/player"
	"fishing/searcher"
	"fishing/utils"
	"fmt"

	"github.com/spf13/cobra"
)

type playOptions struct {
	depth         int
	opponentDepth int
	opponent      string
	evaluator     string
	seed          uint64
	turns         int
	fish          int
}

func newPlayCmd() *cobra.Command {
	opts := playOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one match between the search agent and an opponent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board := game.StandardConfig()
			board.MaxTurns = opts.turns
			board.Fish = opts.fish
			if board.Fish > board.Width*board.Height-2 {
				return fmt.Errorf("cannot place %d fish on a %dx%d board", board.Fish, board.Width, board.Height)
			}

			evaluate, err := experiments.Evaluator(opts.evaluator)
			if err != nil {
				return err
			}

			var opponent engine.Agent
			switch opts.opponent {
			case "search":
				opponent = searcher.NewSelector(
					searcher.WithDepth(opts.opponentDepth),
					searcher.WithRandom(utils.NewRandom(opts.seed+2)),
				)
			case "random":
				opponent = player.NewRandomPlayer(utils.NewRandom(opts.seed + 2))
			default:
				return fmt.Errorf("unknown opponent %q, want search or random", opts.opponent)
			}

			agent := searcher.NewSelector(
				searcher.WithDepth(opts.depth),
				searcher.WithEvaluationFn(evaluate),
				searcher.WithRandom(utils.NewRandom(opts.seed+1)),
				searcher.WithMetrics(),
			)
			state := game.Generate(board, utils.NewRandom(opts.seed))
			e := engine.LocalEngine([]string{"agent", opts.opponent}, []engine.Agent{agent, opponent}, state)

			winner, gameMetric, moveMetrics := e.Run()

			evaluated := 0
			for _, m := range moveMetrics {
				evaluated += m.Evaluated
			}
			if winner == "" {
				winner = "tie"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "winner: %s\nscores: %d-%d\nmoves: %d\nevaluations: %d\nduration: %s\n",
				winner, gameMetric.Scores[0], gameMetric.Scores[1], gameMetric.TotalMoves, evaluated, gameMetric.Duration)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.depth, "depth", meta.SEARCH_DEPTH, "Search depth of the agent")
	cmd.Flags().IntVar(&opts.opponentDepth, "opponent-depth", meta.SEARCH_DEPTH, "Search depth of a search opponent")
	cmd.Flags().StringVar(&opts.opponent, "opponent", "search", "Opponent: search, random")
	cmd.Flags().StringVar(&opts.evaluator, "evaluator", "opportunity", "Heuristic of the agent: nearest, opportunity")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "Seed of the board and of random choices")
	cmd.Flags().IntVar(&opts.turns, "turns", meta.MAX_TURNS, "Round limit")
	cmd.Flags().IntVar(&opts.fish, "fish", meta.NUM_FISH, "Number of fish")

	return cmd
}

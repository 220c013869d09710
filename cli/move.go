package cli

import (
	"fishing/experiments"
	"fishing/game"
	"fishing/meta"
	"fishing/searcher"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type moveOptions struct {
	state       string
	depth       int
	evaluator   string
	noDeepening bool
	verbose     bool
}

func newMoveCmd() *cobra.Command {
	opts := moveOptions{}

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Choose player 0's next action for a state saved as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState(opts.state)
			if err != nil {
				return err
			}

			evaluate, err := experiments.Evaluator(opts.evaluator)
			if err != nil {
				return err
			}

			selector := searcher.NewSelector(
				searcher.WithDepth(opts.depth),
				searcher.WithEvaluationFn(evaluate),
				searcher.WithIterativeDeepening(!opts.noDeepening),
			)
			decision := selector.Analyze(state)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, decision.Action)
			if opts.verbose {
				if decision.Fallback {
					fmt.Fprintln(out, "no legal action, chosen at random")
				}
				for _, score := range decision.Scores {
					fmt.Fprintf(out, "%s\t%g\n", score.Action, score.Value)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.state, "state", "", "Path of the JSON encoded state")
	cmd.Flags().IntVar(&opts.depth, "depth", meta.SEARCH_DEPTH, "Search depth")
	cmd.Flags().StringVar(&opts.evaluator, "evaluator", "opportunity", "Heuristic: nearest, opportunity")
	cmd.Flags().BoolVar(&opts.noDeepening, "no-deepening", false, "Search the full depth once instead of deepening iteratively")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print the value of every legal action")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

func loadState(path string) (*game.GameState, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state: %w", err)
	}
	defer f.Close()

	return game.DecodeState(f)
}

package cli

import (
	"fishing/experiments"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newExperimentCmd() *cobra.Command {
	opts := experiments.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "experiment <" + strings.Join(experiments.Names(), "|") + ">",
		Short: "Run match-ups between agent configurations and record the results",
		Long: `Run match-ups between agent configurations and record the results.

Records are written as agent_configs.csv, game_records.csv, move_records.csv
and move_records.parquet under <out>/<experiment>/<timestamp>/.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: experiments.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Games < 1 {
				return fmt.Errorf("need at least one game, got %d", opts.Games)
			}
			dir, err := experiments.Run(args[0], opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Games, "games", opts.Games, "Games per match-up")
	cmd.Flags().StringVar(&opts.Out, "out", opts.Out, "Root directory of the records")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "Board seed of the first game")
	cmd.Flags().IntVar(&opts.Board.MaxTurns, "turns", opts.Board.MaxTurns, "Round limit of every game")

	return cmd
}

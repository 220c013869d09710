package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "fishing",
		Short: "Minimax agent for the two player fishing game",
		Long: `fishing runs a depth-limited alpha-beta agent for the two player fishing game.

It can pick a single move for a saved state, play a match between two agents,
and run match-up experiments that record per-move search metrics.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.SetupLogging(cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: FISHING_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&cfg.JSONLogs, "json-logs", cfg.JSONLogs, "Log JSON lines instead of console output")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newExperimentCmd())
	rootCmd.AddCommand(newMoveCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package engine

import (
	"fishing/experiments/metrics"
	"fishing/game"
)

const MaxMoves = 10000

type Engine interface {
	// Run plays a game till the round limit, the last fish or MaxMoves
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Agent chooses moves for player 0 of the state it is given.
type Agent interface {
	FindMove(state game.State) (game.Action, metrics.SearchMetric)
}

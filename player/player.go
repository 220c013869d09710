package player

import (
	"fishing/experiments/metrics"
	"fishing/game"
	"fishing/utils"
	"fmt"
)

// RandomPlayer is the baseline agent: it picks uniformly among player 0's legal actions.
type RandomPlayer struct {
	random utils.Random
}

func NewRandomPlayer(random utils.Random) *RandomPlayer {
	return &RandomPlayer{random: random}
}

func (p *RandomPlayer) FindMove(state game.State) (game.Action, metrics.SearchMetric) {
	return p.TakeTurn(state), metrics.SearchMetric{}
}

// TakeTurn decides on an action. Stay when no action is possible.
func (p *RandomPlayer) TakeTurn(state game.State) game.Action {
	gs, ok := state.(*game.GameState)
	if !ok {
		panic(fmt.Sprintf("unexpected state type %T", state))
	}

	possibleActions := gs.LegalActions(0)
	if len(possibleActions) == 0 {
		return game.Stay
	}
	return possibleActions[p.random.Intn(len(possibleActions))]
}

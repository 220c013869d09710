package engine

import (
	"fishing/experiments/metrics"
	"fishing/game"
	"time"

	"github.com/rs/zerolog/log"
)

// Local referees a game between two in-process agents. Agents always search
// as player 0, so the second seat is handed a mirrored state.
type Local struct {
	State   *game.GameState
	players []string
	agents  []Agent
}

func LocalEngine(players []string, agents []Agent, state *game.GameState) *Local {
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	if len(players) != 2 {
		panic("need exactly two players")
	}
	if state == nil {
		panic("need an initial state")
	}

	return &Local{
		State:   state,
		players: players,
		agents:  agents,
	}
}

func (e *Local) done() bool {
	return e.State.Over() || len(e.State.Fish) == 0
}

func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{StartingPlayer: 0, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s and %s are playing on a %dx%d board with %d fish",
		e.players[0], e.players[1], e.State.Width(), e.State.Height(), len(e.State.Fish))

	step := 0
	for player := 0; !e.done() && step < MaxMoves; player = 1 - player {
		var view game.State = e.State
		if player == 1 {
			view = e.State.Mirror()
		}

		action, metric := e.agents[player].FindMove(view)
		if !e.State.IsLegal(player, action) {
			log.Warn().Msgf("%s returned illegal action %s, staying instead", e.players[player], action)
			action = game.Stay
		}

		e.State = e.State.Play(player, action)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Action:       action.String(),
			SearchMetric: metric,
		})
		step++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	gameMetric.Scores = e.State.Score
	if winner := e.State.Winner(); winner >= 0 {
		gameMetric.Winner = e.players[winner]
	}

	if gameMetric.Winner != "" {
		log.Info().Msgf("%s won %d to %d after %d moves", gameMetric.Winner,
			max(e.State.Score[0], e.State.Score[1]), min(e.State.Score[0], e.State.Score[1]), step)
	} else {
		log.Info().Msgf("Tie at %d after %d moves", e.State.Score[0], step)
	}

	return gameMetric.Winner, gameMetric, moveMetrics
}

package game

import (
	"fmt"

	"fishing/meta"
	"fishing/utils"
)

// Config describes a generated board.
type Config struct {
	Width    int
	Height   int
	MaxTurns int
	Fish     int
	MinValue int
	MaxValue int
}

func StandardConfig() Config {
	return Config{
		Width:    meta.BOARD_WIDTH,
		Height:   meta.BOARD_HEIGHT,
		MaxTurns: meta.MAX_TURNS,
		Fish:     meta.NUM_FISH,
		MinValue: 1,
		MaxValue: 11,
	}
}

// Generate places cfg.Fish fish on distinct cells not occupied by a hook.
func Generate(cfg Config, rnd utils.Random) *GameState {
	gs := NewGameState(cfg.Width, cfg.Height, cfg.MaxTurns)
	free := cfg.Width*cfg.Height - len(gs.Hooks)
	if cfg.Fish > free {
		panic(fmt.Sprintf("cannot place %d fish on %d free cells", cfg.Fish, free))
	}
	if cfg.MaxValue < cfg.MinValue {
		panic(fmt.Sprintf("invalid fish value range [%d, %d]", cfg.MinValue, cfg.MaxValue))
	}

	taken := map[Position]bool{gs.Hooks[0]: true, gs.Hooks[1]: true}
	for id := 0; id < cfg.Fish; id++ {
		var pos Position
		for {
			pos = Position{X: rnd.Intn(cfg.Width), Y: rnd.Intn(cfg.Height)}
			if !taken[pos] {
				break
			}
		}
		taken[pos] = true
		gs.Fish[id] = Fish{
			Position: pos,
			Value:    cfg.MinValue + rnd.Intn(cfg.MaxValue-cfg.MinValue+1),
		}
	}
	return gs
}

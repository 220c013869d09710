package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Validate checks a state built outside of NewGameState, e.g. decoded from JSON.
func (gs *GameState) Validate() error {
	if gs.BoardWidth < 2 || gs.BoardHeight < 1 {
		return fmt.Errorf("invalid board size %dx%d", gs.BoardWidth, gs.BoardHeight)
	}
	if gs.MaxTurns < 0 || gs.Turn < 0 {
		return fmt.Errorf("invalid turn %d of %d", gs.Turn, gs.MaxTurns)
	}

	var errs []error
	for player, hook := range gs.Hooks {
		if !gs.onBoard(hook) {
			errs = append(errs, fmt.Errorf("hook %d at %v is off the board", player, hook))
		}
	}
	if gs.Hooks[0] == gs.Hooks[1] {
		errs = append(errs, fmt.Errorf("hooks share cell %v", gs.Hooks[0]))
	}
	for id, f := range gs.Fish {
		if !gs.onBoard(f.Position) {
			errs = append(errs, fmt.Errorf("fish %d at %v is off the board", id, f.Position))
		}
	}
	return errors.Join(errs...)
}

func (gs *GameState) onBoard(p Position) bool {
	return p.X >= 0 && p.X < gs.BoardWidth && p.Y >= 0 && p.Y < gs.BoardHeight
}

// DecodeState reads a JSON encoded state and validates it.
func DecodeState(r io.Reader) (*GameState, error) {
	gs := &GameState{}
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(gs); err != nil {
		return nil, fmt.Errorf("failed to decode state: %w", err)
	}
	if gs.Fish == nil {
		gs.Fish = map[int]Fish{}
	}
	if err := gs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid state: %w", err)
	}
	return gs, nil
}

package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"maps"
	"slices"
)

// Fish is a catchable fish. Values may be negative.
type Fish struct {
	Position Position `json:"position"`
	Value    int      `json:"value"`
}

// GameState is the full state of a match. Operations never modify the
// receiver: Play returns a new copy.
type GameState struct {
	BoardWidth  int          `json:"width"`
	BoardHeight int          `json:"height"`
	Score       [2]int       `json:"scores"`
	Hooks       [2]Position  `json:"hooks"`
	Fish        map[int]Fish `json:"fish"`
	Turn        int          `json:"turn"`               // Completed rounds
	MaxTurns    int          `json:"max_turns"`          // 0 means no round limit
	Mirrored    bool         `json:"mirrored,omitempty"` // Seats swapped: player 0 completes a round
}

// NewGameState returns an empty board with both hooks at the top row.
func NewGameState(width, height, maxTurns int) *GameState {
	if width < 2 || height < 1 {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}
	return &GameState{
		BoardWidth:  width,
		BoardHeight: height,
		Hooks: [2]Position{
			{X: 0, Y: height - 1},
			{X: width / 2, Y: height - 1},
		},
		Fish:     map[int]Fish{},
		MaxTurns: maxTurns,
	}
}

func (gs *GameState) Copy() *GameState {
	c := *gs
	c.Fish = maps.Clone(gs.Fish)
	if c.Fish == nil {
		c.Fish = map[int]Fish{}
	}
	return &c
}

func (gs *GameState) Scores() (int, int) {
	return gs.Score[0], gs.Score[1]
}

func (gs *GameState) HookPositions() (Position, Position) {
	return gs.Hooks[0], gs.Hooks[1]
}

func (gs *GameState) FishPositions() map[int]Position {
	positions := make(map[int]Position, len(gs.Fish))
	for id, f := range gs.Fish {
		positions[id] = f.Position
	}
	return positions
}

func (gs *GameState) FishValue(fish int) int {
	f, ok := gs.Fish[fish]
	if !ok {
		panic(fmt.Sprintf("fish %d is not in play", fish))
	}
	return f.Value
}

func (gs *GameState) Width() int {
	return gs.BoardWidth
}

func (gs *GameState) Height() int {
	return gs.BoardHeight
}

// Over reports whether the round limit has been reached.
func (gs *GameState) Over() bool {
	return gs.MaxTurns > 0 && gs.Turn >= gs.MaxTurns
}

// Winner returns 0 or 1 for the player ahead on points, -1 on a tie.
func (gs *GameState) Winner() int {
	switch {
	case gs.Score[0] > gs.Score[1]:
		return 0
	case gs.Score[1] > gs.Score[0]:
		return 1
	}
	return -1
}

// target returns where player's hook ends up after action, and whether the move is legal.
func (gs *GameState) target(player int, action Action) (Position, bool) {
	hook := gs.Hooks[player]
	if action == Stay {
		return hook, true
	}
	dx, dy := action.delta()
	next := Position{
		X: ((hook.X+dx)%gs.BoardWidth + gs.BoardWidth) % gs.BoardWidth,
		Y: hook.Y + dy,
	}
	if next.Y < 0 || next.Y >= gs.BoardHeight {
		return hook, false
	}
	// Hooks never share a cell
	if next == gs.Hooks[1-player] {
		return hook, false
	}
	return next, true
}

// IsLegal reports whether player may take action in this state.
func (gs *GameState) IsLegal(player int, action Action) bool {
	if action < Stay || action > Right {
		return false
	}
	_, ok := gs.target(player, action)
	return ok
}

// LegalActions returns player's legal actions in index order.
func (gs *GameState) LegalActions(player int) []Action {
	if gs.Over() {
		return nil
	}
	actions := make([]Action, 0, len(Actions))
	for _, a := range Actions {
		if gs.IsLegal(player, a) {
			actions = append(actions, a)
		}
	}
	return actions
}

// Play moves player's hook and resolves any catch. A round completes after
// player 1 moves, or player 0 on a mirrored state.
func (gs *GameState) Play(player int, action Action) *GameState {
	if player != 0 && player != 1 {
		panic(fmt.Sprintf("invalid player %d", player))
	}
	next, ok := gs.target(player, action)
	if !ok {
		panic(fmt.Sprintf("illegal action %s for player %d", action, player))
	}

	newGs := gs.Copy()
	newGs.Hooks[player] = next
	for id, f := range newGs.Fish {
		if f.Position == next {
			newGs.Score[player] += f.Value
			delete(newGs.Fish, id)
		}
	}
	if player == gs.closer() {
		newGs.Turn++
	}
	return newGs
}

// closer is the player whose move completes a round.
func (gs *GameState) closer() int {
	if gs.Mirrored {
		return 0
	}
	return 1
}

// Mirror swaps the players so that player 1 can search as player 0. The
// round still completes after the same seat moves.
func (gs *GameState) Mirror() *GameState {
	m := gs.Copy()
	m.Mirrored = !gs.Mirrored
	m.Score[0], m.Score[1] = gs.Score[1], gs.Score[0]
	m.Hooks[0], m.Hooks[1] = gs.Hooks[1], gs.Hooks[0]
	return m
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.BoardWidth))
	binary.Write(hasher, binary.LittleEndian, int64(gs.BoardHeight))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.MaxTurns))
	binary.Write(hasher, binary.LittleEndian, gs.Mirrored)

	for player := 0; player < 2; player++ {
		binary.Write(hasher, binary.LittleEndian, int64(gs.Score[player]))
		binary.Write(hasher, binary.LittleEndian, int64(gs.Hooks[player].X))
		binary.Write(hasher, binary.LittleEndian, int64(gs.Hooks[player].Y))
	}

	// Map iteration order is random, hash fish sorted by id
	ids := slices.Sorted(maps.Keys(gs.Fish))
	for _, id := range ids {
		f := gs.Fish[id]
		binary.Write(hasher, binary.LittleEndian, int64(id))
		binary.Write(hasher, binary.LittleEndian, int64(f.Position.X))
		binary.Write(hasher, binary.LittleEndian, int64(f.Position.Y))
		binary.Write(hasher, binary.LittleEndian, int64(f.Value))
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	return fmt.Sprintf("turn=%d scores=%v hooks=%v fish=%d", gs.Turn, gs.Score, gs.Hooks, len(gs.Fish))
}

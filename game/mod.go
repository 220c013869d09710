package game

// Position is a board cell. X wraps around the board width, Y does not.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type StateHash uint64

// State is the read-only view of a game state that evaluation depends on.
// Player 0 is the searching agent, player 1 its opponent.
type State interface {
	Scores() (p0, p1 int)
	HookPositions() (p0, p1 Position)
	// FishPositions returns a fresh map of the fish still in play
	FishPositions() map[int]Position
	// FishValue panics if fish is not in play
	FishValue(fish int) int
	Width() int
}

// Evaluates a state from player 0's perspective: higher is better for player 0.
// Results are finite and within [-MaxEval, MaxEval].
type Evaluate func(State) float64

// Expander enumerates the children of a node, one per legal action of the
// player to move, in action order. Children are computed once per node.
type Expander interface {
	Expand(node *Node) []*Node
}

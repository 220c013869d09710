package game

import (
	"testing"

	"fishing/utils"

	"github.com/stretchr/testify/require"
)

func utilsRandom(seed uint64) utils.Random {
	return utils.NewRandom(seed)
}

func TestNodeExpander(t *testing.T) {
	t.Run("one child per legal action in index order", func(t *testing.T) {
		gs := newTestState()
		gs.Hooks[0] = Position{X: 0, Y: 0}
		ex := NewNodeExpander()

		children := ex.Expand(NewNode(gs, 0))

		require.Len(t, children, 4)
		moves := []Action{}
		for _, child := range children {
			moves = append(moves, child.Move)
			require.Equal(t, 1, child.Player, "Children should pass the turn")
		}
		require.Equal(t, []Action{Stay, Up, Left, Right}, moves, "Illegal down should be skipped")
		require.Equal(t, Position{X: 9, Y: 0}, children[2].State.(*GameState).Hooks[0])
	})

	t.Run("expansion is memoised", func(t *testing.T) {
		gs := newTestState()
		ex := NewNodeExpander()

		first := ex.Expand(NewNode(gs, 0))
		second := ex.Expand(NewNode(gs.Copy(), 0))

		require.Same(t, first[0], second[0], "Equal nodes should share cached children")
		require.Equal(t, 1, ex.Size())
	})

	t.Run("player to move is part of the key", func(t *testing.T) {
		gs := newTestState()
		ex := NewNodeExpander()

		ex.Expand(NewNode(gs, 0))
		children := ex.Expand(NewNode(gs, 1))

		require.Equal(t, 2, ex.Size())
		require.Equal(t, 0, children[0].Player)
	})

	t.Run("finished game has no children", func(t *testing.T) {
		gs := newTestState()
		gs.MaxTurns = 1
		gs.Turn = 1
		require.Empty(t, NewNodeExpander().Expand(NewNode(gs, 0)))
	})

	t.Run("panics on foreign state types", func(t *testing.T) {
		require.Panics(t, func() {
			NewNodeExpander().Expand(NewNode(nil, 0))
		})
	})
}

package searcher

import (
	"fishing/game"
)

// mockState is a labelled tree node whose heuristic value is fixed.
type mockState struct {
	id    string
	value float64
}

func (m *mockState) Scores() (int, int) {
	return 0, 0
}

func (m *mockState) HookPositions() (game.Position, game.Position) {
	return game.Position{}, game.Position{}
}

func (m *mockState) FishPositions() map[int]game.Position {
	return map[int]game.Position{}
}

func (m *mockState) FishValue(fish int) int {
	panic("mock state has no fish")
}

func (m *mockState) Width() int {
	return 1
}

func evaluateMock(s game.State) float64 {
	return s.(*mockState).value
}

// mockExpander expands a fixed tree given as parent id -> child ids.
type mockExpander struct {
	tree     map[string][]string
	values   map[string]float64
	expanded []string
}

func (e *mockExpander) node(id string, player int) *game.Node {
	return game.NewNode(&mockState{id: id, value: e.values[id]}, player)
}

func (e *mockExpander) Expand(node *game.Node) []*game.Node {
	id := node.State.(*mockState).id
	e.expanded = append(e.expanded, id)
	var children []*game.Node
	for i, childID := range e.tree[id] {
		children = append(children, &game.Node{
			State:  &mockState{id: childID, value: e.values[childID]},
			Player: 1 - node.Player,
			Move:   game.Action(i),
		})
	}
	return children
}

// textbookTree is a two-ply tree where max(min(3,12,8), min(2,4,6), min(14,5,2)) = 3.
func textbookTree() *mockExpander {
	return &mockExpander{
		tree: map[string][]string{
			"root": {"a", "b", "c"},
			"a":    {"a1", "a2", "a3"},
			"b":    {"b1", "b2", "b3"},
			"c":    {"c1", "c2", "c3"},
		},
		values: map[string]float64{
			"root": 100, "a": 100, "b": 100, "c": 100,
			"a1": 3, "a2": 12, "a3": 8,
			"b1": 2, "b2": 4, "b3": 6,
			"c1": 14, "c2": 5, "c3": 2,
		},
	}
}

type emptyExpander struct{}

func (emptyExpander) Expand(node *game.Node) []*game.Node {
	return nil
}

package game

import "fmt"

// Node is a state with the player to move. Move is the action that led to
// this node from its parent and is meaningless at the root.
type Node struct {
	State  State
	Player int
	Move   Action
}

func NewNode(state State, player int) *Node {
	return &Node{State: state, Player: player}
}

type nodeKey struct {
	hash   StateHash
	player int
}

// NodeExpander expands *GameState nodes and memoises children by
// (state, player to move), so expanding the same node twice is free.
type NodeExpander struct {
	children map[nodeKey][]*Node
}

func NewNodeExpander() *NodeExpander {
	return &NodeExpander{children: make(map[nodeKey][]*Node)}
}

func (e *NodeExpander) Expand(node *Node) []*Node {
	gs, ok := node.State.(*GameState)
	if !ok {
		panic(fmt.Sprintf("unexpected state type %T", node.State))
	}

	key := nodeKey{hash: gs.Hash(), player: node.Player}
	if children, ok := e.children[key]; ok {
		return children
	}

	actions := gs.LegalActions(node.Player)
	children := make([]*Node, 0, len(actions))
	for _, action := range actions {
		children = append(children, &Node{
			State:  gs.Play(node.Player, action),
			Player: 1 - node.Player,
			Move:   action,
		})
	}
	e.children[key] = children
	return children
}

// Size returns the number of expanded nodes.
func (e *NodeExpander) Size() int {
	return len(e.children)
}

package game

import (
	"fmt"

	"fishing/utils"
)

// Action is a hook move. The index order is part of the contract.
type Action int

const (
	Stay Action = iota
	Up
	Down
	Left
	Right
)

// Actions lists every action in index order.
var Actions = [...]Action{Stay, Up, Down, Left, Right}

var actionNames = [...]string{"stay", "up", "down", "left", "right"}

func (a Action) String() string {
	if a < Stay || a > Right {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps an action symbol back to its Action.
func ParseAction(s string) (Action, error) {
	i := utils.FindIndex(actionNames[:], s)
	if i < 0 {
		return Stay, fmt.Errorf("unknown action %q", s)
	}
	return Action(i), nil
}

// delta returns the hook displacement of an action.
func (a Action) delta() (dx, dy int) {
	switch a {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

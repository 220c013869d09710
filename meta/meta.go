// meta/meta.go
package meta

// SEARCH_DEPTH is the default number of plies searched below each root action.
const SEARCH_DEPTH = 4

// BOARD_WIDTH and BOARD_HEIGHT define the standard board.
const BOARD_WIDTH = 20
const BOARD_HEIGHT = 20

// NUM_FISH defines how many fish a generated board starts with.
const NUM_FISH = 10

// MAX_TURNS defines the round limit of a match.
const MAX_TURNS = 150

package engine

import "github.com/dylhunn/dragontoothmg"

// Limits carries the parsed "go" parameters for a single search. Zero values
// mean "not given". SearchMoves, when non-empty, restricts the root to the
// listed moves.
type Limits struct {
	WTime, BTime int
	WInc, BInc   int
	MovesToGo    int
	Depth        int
	Nodes        int64
	MoveTime     int
	Mate         int
	Perft        int
	Infinite     bool
	Ponder       bool
	SearchMoves  []dragontoothmg.Move
}

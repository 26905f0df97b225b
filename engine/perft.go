package engine

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/uci"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, move := range moves {
		unapply := b.Apply(move)
		nodes += Perft(b, depth-1)
		unapply()
	}
	return nodes
}

// runPerft prints the per-root-move breakdown and the total.
func (s *Searcher) runPerft(b *dragontoothmg.Board, depth int) {
	var total uint64
	for _, move := range b.GenerateLegalMoves() {
		unapply := b.Apply(move)
		nodes := Perft(b, depth-1)
		unapply()
		total += nodes
		fmt.Fprintf(s.out, "%s: %d\n", uci.MoveToText(move, false), nodes)
	}
	fmt.Fprintf(s.out, "\nNodes searched: %d\n", total)
}

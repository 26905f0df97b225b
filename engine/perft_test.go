package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestPerftStartpos(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	cases := map[int]uint64{1: 20, 2: 400, 3: 8902, 4: 197281}
	for depth, want := range cases {
		if got := Perft(&board, depth); got != want {
			t.Errorf("perft(%d) = %d, want %d", depth, got, want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	board := dragontoothmg.ParseFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	cases := map[int]uint64{1: 48, 2: 2039, 3: 97862}
	for depth, want := range cases {
		if got := Perft(&board, depth); got != want {
			t.Errorf("perft(%d) = %d, want %d", depth, got, want)
		}
	}
}

package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestTransTableStoreProbe(t *testing.T) {
	var tt TransTable
	tt.init(1)

	move := dragontoothmg.Move(12 | 28<<6) // e2e4
	tt.store(0xdeadbeef, 5, 0, move, 42, ExactFlag)

	gotMove, usable, score := tt.probe(0xdeadbeef, 5, -100, 100, 0)
	if !usable || score != 42 || gotMove != move {
		t.Errorf("probe = (%v, %v, %d), want (%v, true, 42)", gotMove, usable, score, move)
	}

	// A deeper request must not use the shallow entry, but still gets the move.
	gotMove, usable, _ = tt.probe(0xdeadbeef, 6, -100, 100, 0)
	if usable {
		t.Error("shallow entry used for a deeper probe")
	}
	if gotMove != move {
		t.Error("move hint lost on depth mismatch")
	}

	if _, usable, _ := tt.probe(0xcafef00d, 1, -100, 100, 0); usable {
		t.Error("probe hit on a hash that was never stored")
	}
}

func TestTransTableBounds(t *testing.T) {
	var tt TransTable
	tt.init(1)

	tt.store(1, 4, 0, 0, 90, BetaFlag)
	if _, usable, score := tt.probe(1, 4, -50, 50, 0); !usable || score != 50 {
		t.Errorf("beta bound: usable=%v score=%d, want true 50", usable, score)
	}
	if _, usable, _ := tt.probe(1, 4, -50, 100, 0); usable {
		t.Error("beta bound below beta must not cut")
	}

	tt.store(2, 4, 0, 0, -90, AlphaFlag)
	if _, usable, score := tt.probe(2, 4, -50, 50, 0); !usable || score != -50 {
		t.Errorf("alpha bound: usable=%v score=%d, want true -50", usable, score)
	}
}

func TestTransTableMateNormalization(t *testing.T) {
	var tt TransTable
	tt.init(1)

	// A mate found at ply 2 is stored root-relative and re-anchored on probe.
	mateScore := MaxScore - 5
	tt.store(7, 8, 2, 0, mateScore, ExactFlag)
	_, usable, score := tt.probe(7, 8, -MaxScore, MaxScore, 4)
	if !usable {
		t.Fatal("entry not usable")
	}
	if want := mateScore + 2 - 4; score != want {
		t.Errorf("score = %d, want %d", score, want)
	}
}

package engine

import (
	"testing"
	"time"

	"github.com/dylhunn/dragontoothmg"
)

func TestTimeHandlerMoveTime(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	var th TimeHandler
	th.Start(&board, Limits{MoveTime: 5000})
	if !th.hasDeadline {
		t.Fatal("movetime must set a deadline")
	}
	if th.budget > 5*time.Second || th.budget <= 0 {
		t.Errorf("budget = %v", th.budget)
	}
	if th.HardExceeded() {
		t.Error("deadline exceeded immediately")
	}
}

func TestTimeHandlerDepthOnly(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	var th TimeHandler
	th.Start(&board, Limits{Depth: 10})
	if th.hasDeadline {
		t.Error("a pure depth search must not be clock bound")
	}
	th.Start(&board, Limits{Infinite: true})
	if th.hasDeadline {
		t.Error("infinite search must not be clock bound")
	}
}

func TestTimeHandlerClock(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	var th TimeHandler
	th.Start(&board, Limits{WTime: 60000, WInc: 1000})
	if !th.hasDeadline {
		t.Fatal("clock limits must set a deadline")
	}
	if th.budget >= 60*time.Second {
		t.Errorf("budget %v exceeds the whole clock", th.budget)
	}
	if th.budget < 5*time.Millisecond {
		t.Errorf("budget %v below the floor", th.budget)
	}
}

func TestEstimateMovesRemaining(t *testing.T) {
	full := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	if got := estimateMovesRemaining(&full); got != 45 {
		t.Errorf("full board = %d, want 45", got)
	}
	bare := dragontoothmg.ParseFen("k7/8/8/8/8/8/8/K7 w - - 0 1")
	if got := estimateMovesRemaining(&bare); got != 20 {
		t.Errorf("bare kings = %d, want 20", got)
	}
}

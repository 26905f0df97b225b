package engine

import (
	"math/bits"
	"time"

	"github.com/dylhunn/dragontoothmg"
)

// When no clock and no depth are given, think for this long.
const defaultThinkMs = 300000

const moveOverheadMs = 30

// TimeHandler turns the clock parameters of one search into hard and soft
// deadlines. The hard deadline aborts the search mid-tree; the soft one
// stops new iterations from starting.
type TimeHandler struct {
	start       time.Time
	budget      time.Duration
	hasDeadline bool
}

func (th *TimeHandler) Start(b *dragontoothmg.Board, limits Limits) {
	th.start = time.Now()
	th.hasDeadline = false

	if limits.Perft > 0 || limits.Infinite {
		return
	}
	if limits.MoveTime > 0 {
		th.budget = time.Duration(limits.MoveTime-moveOverheadMs) * time.Millisecond
		if th.budget <= 0 {
			th.budget = time.Millisecond
		}
		th.hasDeadline = true
		return
	}

	remaining, increment := limits.WTime, limits.WInc
	if !b.Wtomove {
		remaining, increment = limits.BTime, limits.BInc
	}
	if remaining <= 0 {
		if limits.Depth > 0 || limits.Mate > 0 || limits.Nodes > 0 {
			return // bounded by depth or node count instead
		}
		remaining = defaultThinkMs
	}

	movesToGo := limits.MovesToGo
	if movesToGo <= 0 {
		movesToGo = estimateMovesRemaining(b)
	}

	thinkMs := remaining/movesToGo + increment*3/4 - moveOverheadMs
	if maxMs := remaining * 7 / 10; thinkMs > maxMs {
		thinkMs = maxMs
	}
	if thinkMs < 5 {
		thinkMs = 5
	}
	th.budget = time.Duration(thinkMs) * time.Millisecond
	th.hasDeadline = true
}

func (th *TimeHandler) HardExceeded() bool {
	return th.hasDeadline && time.Since(th.start) >= th.budget
}

// SoftExceeded reports whether a new iteration is unlikely to finish in the
// remaining budget.
func (th *TimeHandler) SoftExceeded() bool {
	return th.hasDeadline && time.Since(th.start) >= th.budget*3/5
}

func (th *TimeHandler) Elapsed() time.Duration {
	return time.Since(th.start)
}

// estimateMovesRemaining scales with the non-pawn material still on the
// board, from 20 moves in bare endings up to 45 in full middlegames.
func estimateMovesRemaining(b *dragontoothmg.Board) int {
	pieces := (b.White.All | b.Black.All) &^
		(b.White.Pawns | b.Black.Pawns | b.White.Kings | b.Black.Kings)
	count := bits.OnesCount64(pieces)
	if count > 14 {
		count = 14
	}
	return 20 + count*25/14
}

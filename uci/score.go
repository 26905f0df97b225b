package uci

import (
	"fmt"
	"math"
)

// Score bounds shared with the search. Scores beyond MateThreshold encode a
// mate distance against ScoreInfinite.
const (
	ScoreInfinite int32 = 32500
	MateThreshold int32 = 20000
)

// ScoreText formats a search score the way info lines expect it: "cp <x>"
// for centipawns, "mate <y>" (moves, negative when being mated) otherwise.
func ScoreText(score int32) string {
	if score > MateThreshold {
		return fmt.Sprintf("mate %d", (ScoreInfinite-score+1)/2)
	}
	if score < -MateThreshold {
		return fmt.Sprintf("mate %d", -(ScoreInfinite+score+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}

// winRateModel returns the probability (per mille) of winning for the side
// to move, given a centipawn evaluation and the game ply. The coefficients
// are a third-order polynomial fit of long-time-control engine game data.
func winRateModel(v int, ply int) int {
	// The model captures only up to 240 plies, so limit input (and rescale).
	m := float64(min(240, ply)) / 64.0

	as := [4]float64{-8.24404295, 64.23892342, -95.73056462, 153.86478679}
	bs := [4]float64{-3.37154371, 28.44489198, -56.67657741, 72.05858751}
	a := (((as[0]*m+as[1])*m+as[2])*m) + as[3]
	b := (((bs[0]*m+bs[1])*m+bs[2])*m) + bs[3]

	x := math.Min(math.Max(float64(v), -1000.0), 1000.0)

	return int(0.5 + 1000/(1+math.Exp((a-x)/b)))
}

// WDL returns win/draw/loss chances in per mille for the side to move.
// The three values always sum to 1000.
func WDL(v int, ply int) (win, draw, loss int) {
	win = winRateModel(v, ply)
	loss = winRateModel(-v, ply)
	draw = 1000 - win - loss
	return win, draw, loss
}

// WDLText formats the WDL triplet the way search info lines expect it.
func WDLText(v int, ply int) string {
	w, d, l := WDL(v, ply)
	return fmt.Sprintf("wdl %d %d %d", w, d, l)
}

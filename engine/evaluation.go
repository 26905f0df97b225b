package engine

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

var pieceValueMG = [7]int32{0, 100, 320, 330, 500, 900, 0}
var pieceValueEG = [7]int32{0, 120, 320, 330, 530, 940, 0}

// Game phase weights per piece type; 24 at the starting position.
var phaseValue = [7]int{0, 0, 1, 1, 2, 4, 0}

const totalPhase = 24

const tempoBonus int32 = 10

// Piece-square tables, written from white's perspective with rank 8 first,
// so white squares index with sq^56 and black squares directly.
var pawnPST = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int32{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int32{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenPST = [64]int32{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingPSTMG = [64]int32{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var kingPSTEG = [64]int32{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

func pstMG(pt dragontoothmg.Piece, sq int) int32 {
	switch pt {
	case dragontoothmg.Pawn:
		return pawnPST[sq]
	case dragontoothmg.Knight:
		return knightPST[sq]
	case dragontoothmg.Bishop:
		return bishopPST[sq]
	case dragontoothmg.Rook:
		return rookPST[sq]
	case dragontoothmg.Queen:
		return queenPST[sq]
	case dragontoothmg.King:
		return kingPSTMG[sq]
	}
	return 0
}

func pstEG(pt dragontoothmg.Piece, sq int) int32 {
	if pt == dragontoothmg.King {
		return kingPSTEG[sq]
	}
	return pstMG(pt, sq)
}

// Evaluate scores the position in centipawns from the side to move's
// perspective. Tapered material plus piece-square tables plus tempo.
func Evaluate(b *dragontoothmg.Board) int32 {
	var mg, eg int32
	phase := 0

	accumulate := func(bb uint64, pt dragontoothmg.Piece, white bool) {
		for bb != 0 {
			sq := bits.TrailingZeros64(bb)
			bb &= bb - 1
			idx := sq
			if white {
				idx = sq ^ 56
			}
			phase += phaseValue[pt]
			if white {
				mg += pieceValueMG[pt] + pstMG(pt, idx)
				eg += pieceValueEG[pt] + pstEG(pt, idx)
			} else {
				mg -= pieceValueMG[pt] + pstMG(pt, idx)
				eg -= pieceValueEG[pt] + pstEG(pt, idx)
			}
		}
	}

	accumulate(b.White.Pawns, dragontoothmg.Pawn, true)
	accumulate(b.White.Knights, dragontoothmg.Knight, true)
	accumulate(b.White.Bishops, dragontoothmg.Bishop, true)
	accumulate(b.White.Rooks, dragontoothmg.Rook, true)
	accumulate(b.White.Queens, dragontoothmg.Queen, true)
	accumulate(b.White.Kings, dragontoothmg.King, true)
	accumulate(b.Black.Pawns, dragontoothmg.Pawn, false)
	accumulate(b.Black.Knights, dragontoothmg.Knight, false)
	accumulate(b.Black.Bishops, dragontoothmg.Bishop, false)
	accumulate(b.Black.Rooks, dragontoothmg.Rook, false)
	accumulate(b.Black.Queens, dragontoothmg.Queen, false)
	accumulate(b.Black.Kings, dragontoothmg.King, false)

	if phase > totalPhase {
		phase = totalPhase
	}
	score := (mg*int32(phase) + eg*int32(totalPhase-phase)) / totalPhase

	if !b.Wtomove {
		score = -score
	}
	return score + tempoBonus
}

package engine

import "github.com/dylhunn/dragontoothmg"

// Ordering score bands. Everything at or above tacticalBase sorts ahead of
// quiet history scores.
const (
	tacticalBase  uint16 = 20000
	hashMoveBonus uint16 = 500
	killerBonus   uint16 = 10

	historyMax = 16000
)

// mvvLva[victim][aggressor]
var mvvLva = [7][7]uint16{
	{},
	{0, 15, 14, 13, 12, 11, 10}, // pawn victim
	{0, 25, 24, 23, 22, 21, 20}, // knight victim
	{0, 35, 34, 33, 32, 31, 30}, // bishop victim
	{0, 45, 44, 43, 42, 41, 40}, // rook victim
	{0, 55, 54, 53, 52, 51, 50}, // queen victim
	{},
}

type scoredMove struct {
	move  dragontoothmg.Move
	score uint16
}

type moveList struct {
	entries []scoredMove
}

// orderNextMove selection-sorts the best remaining move into position index.
func orderNextMove(index int, ml *moveList) {
	best := index
	for i := index + 1; i < len(ml.entries); i++ {
		if ml.entries[i].score > ml.entries[best].score {
			best = i
		}
	}
	ml.entries[index], ml.entries[best] = ml.entries[best], ml.entries[index]
}

type KillerTable struct {
	moves [MaxDepth + 1][2]dragontoothmg.Move
}

func (kt *KillerTable) Insert(move dragontoothmg.Move, ply int8) {
	if kt.moves[ply][0] != move {
		kt.moves[ply][1] = kt.moves[ply][0]
		kt.moves[ply][0] = move
	}
}

func (kt *KillerTable) IsKiller(move dragontoothmg.Move, ply int8) bool {
	return kt.moves[ply][0] == move || kt.moves[ply][1] == move
}

func (kt *KillerTable) Clear() {
	for i := range kt.moves {
		kt.moves[i][0] = 0
		kt.moves[i][1] = 0
	}
}

func sideIndex(wtomove bool) int {
	if wtomove {
		return 0
	}
	return 1
}

func (s *Searcher) bumpHistory(wtomove bool, move dragontoothmg.Move, depth int8) {
	entry := &s.history[sideIndex(wtomove)][move.From()][move.To()]
	*entry += int(depth) * int(depth)
	if *entry > historyMax {
		// Halve everything so recent cutoffs keep mattering.
		for side := range s.history {
			for from := range s.history[side] {
				for to := range s.history[side][from] {
					s.history[side][from][to] /= 2
				}
			}
		}
	}
}

func (s *Searcher) dropHistory(wtomove bool, move dragontoothmg.Move) {
	entry := &s.history[sideIndex(wtomove)][move.From()][move.To()]
	if *entry > 0 {
		*entry--
	}
}

func (s *Searcher) storeCounter(wtomove bool, prev, move dragontoothmg.Move) {
	if prev == 0 {
		return
	}
	s.counters[sideIndex(wtomove)][prev.From()][prev.To()] = move
}

func (s *Searcher) clearHistory() {
	for side := range s.history {
		for from := range s.history[side] {
			for to := range s.history[side][from] {
				s.history[side][from][to] = 0
				s.counters[side][from][to] = 0
			}
		}
	}
}

// scoreMoves assigns ordering scores: hash move, then captures by MVV-LVA,
// then promotions, then killers, then quiets by history with a counter-move
// nudge.
func (s *Searcher) scoreMoves(b *dragontoothmg.Board, moves []dragontoothmg.Move, ply int8, ttMove, prevMove dragontoothmg.Move) moveList {
	ml := moveList{entries: make([]scoredMove, len(moves))}
	enemy := &b.Black
	if !b.Wtomove {
		enemy = &b.White
	}
	own := &b.White
	if !b.Wtomove {
		own = &b.Black
	}
	side := sideIndex(b.Wtomove)
	counter := dragontoothmg.Move(0)
	if prevMove != 0 {
		counter = s.counters[side][prevMove.From()][prevMove.To()]
	}

	for i, move := range moves {
		ml.entries[i].move = move
		switch {
		case move == ttMove:
			ml.entries[i].score = tacticalBase + hashMoveBonus
		case dragontoothmg.IsCapture(move, b):
			victim, ok := pieceTypeOn(enemy, move.To())
			if !ok {
				victim = dragontoothmg.Pawn // en passant
			}
			aggressor, _ := pieceTypeOn(own, move.From())
			ml.entries[i].score = tacticalBase + mvvLva[victim][aggressor]
		case move.Promote() != dragontoothmg.Nothing:
			ml.entries[i].score = tacticalBase + uint16(pieceValueEG[move.Promote()]/10)
		case s.killers.IsKiller(move, ply):
			ml.entries[i].score = tacticalBase - killerBonus
		default:
			score := s.history[side][move.From()][move.To()]
			if move == counter {
				score += 200
			}
			if score > historyMax {
				score = historyMax
			}
			ml.entries[i].score = uint16(score)
		}
	}
	return ml
}

func pieceTypeOn(bitboards *dragontoothmg.Bitboards, sq uint8) (dragontoothmg.Piece, bool) {
	bit := uint64(1) << sq
	switch {
	case bitboards.Pawns&bit != 0:
		return dragontoothmg.Pawn, true
	case bitboards.Knights&bit != 0:
		return dragontoothmg.Knight, true
	case bitboards.Bishops&bit != 0:
		return dragontoothmg.Bishop, true
	case bitboards.Rooks&bit != 0:
		return dragontoothmg.Rook, true
	case bitboards.Queens&bit != 0:
		return dragontoothmg.Queen, true
	case bitboards.Kings&bit != 0:
		return dragontoothmg.King, true
	}
	return dragontoothmg.Nothing, false
}

package engine

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/dylhunn/dragontoothmg"

	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/uci"
)

const (
	MaxDepth = 64

	MaxScore  = uci.ScoreInfinite
	Checkmate = uci.MateThreshold
	DrawScore int32 = 0

	aspirationWindow int32 = 35

	lmrDepthLimit = 3
	lmrMoveLimit  = 3
)

var futilityMargins = [8]int32{0, 120, 220, 320, 420, 520, 620, 720}
var rfpMargins = [8]int32{0, 100, 200, 300, 400, 500, 600, 700}

var lmrTable [MaxDepth + 1][64]int8

func init() {
	for depth := 1; depth <= MaxDepth; depth++ {
		for moveCount := 1; moveCount < 64; moveCount++ {
			r := 1 + depth/8 + moveCount/16
			if r > depth-2 {
				r = depth - 2
			}
			if r < 0 {
				r = 0
			}
			lmrTable[depth][moveCount] = int8(r)
		}
	}
}

// PVLine holds the principal variation found for a subtree.
type PVLine struct {
	Moves []dragontoothmg.Move
}

func (pv *PVLine) Clear() {
	pv.Moves = pv.Moves[:0]
}

func (pv *PVLine) Update(move dragontoothmg.Move, child *PVLine) {
	pv.Moves = append(pv.Moves[:0], move)
	pv.Moves = append(pv.Moves, child.Moves...)
}

func (pv *PVLine) Clone() PVLine {
	return PVLine{Moves: append([]dragontoothmg.Move(nil), pv.Moves...)}
}

func (pv *PVLine) BestMove() dragontoothmg.Move {
	if len(pv.Moves) == 0 {
		return uci.MoveNone
	}
	return pv.Moves[0]
}

// Searcher owns all search state: the transposition table, ordering
// heuristics, clock handling and the repetition stack. One Searcher serves
// one board session; none of its state is ambient.
type Searcher struct {
	tt       TransTable
	killers  KillerTable
	history  [2][64][64]int
	counters [2][64][64]dragontoothmg.Move
	timing   TimeHandler

	stopFlag atomic.Bool
	halted   bool

	limits    Limits
	nodes     uint64
	prevScore int32
	repStack  []uint64

	out io.Writer
}

func NewSearcher() *Searcher {
	s := &Searcher{out: os.Stdout}
	s.tt.init(ttSizeMB)
	return s
}

// SetOutput redirects info and bestmove lines, mainly for tests.
func (s *Searcher) SetOutput(w io.Writer) {
	s.out = w
}

// RequestStop asks a running search to halt; safe from other goroutines.
func (s *Searcher) RequestStop() {
	s.stopFlag.Store(true)
}

// ResetForNewGame drops everything learned from previous searches.
func (s *Searcher) ResetForNewGame() {
	s.tt.clear()
	s.killers.Clear()
	s.clearHistory()
	s.prevScore = 0
}

// StartSearch runs a full search under the given limits, prints info lines
// and the final bestmove, and returns the chosen move's coordinate text.
// gameHistory holds the Zobrist hashes of the positions played so far, used
// for repetition detection; the current position need not be included.
func (s *Searcher) StartSearch(board *dragontoothmg.Board, gameHistory []uint64, limits Limits) string {
	if limits.Perft > 0 {
		s.runPerft(board, limits.Perft)
		return ""
	}

	s.stopFlag.Store(false)
	s.halted = false
	s.nodes = 0
	s.limits = limits
	s.repStack = append(s.repStack[:0], gameHistory...)
	if n := len(s.repStack); n == 0 || s.repStack[n-1] != board.Hash() {
		s.repStack = append(s.repStack, board.Hash())
	}
	s.timing.Start(board, limits)

	maxDepth := limits.Depth
	if maxDepth <= 0 && limits.Mate > 0 {
		maxDepth = 2 * limits.Mate
	}
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	best := s.rootsearch(board, maxDepth)
	text := uci.MoveToText(best, false)
	fmt.Fprintln(s.out, "bestmove", text)
	return text
}

// rootsearch iterates deepening with an aspiration window around the last
// accepted score, widening and re-searching on a fail.
func (s *Searcher) rootsearch(b *dragontoothmg.Board, maxDepth int) dragontoothmg.Move {
	window := aspirationWindow
	alpha, beta := -MaxScore, MaxScore
	if s.prevScore != 0 {
		alpha, beta = s.prevScore-window, s.prevScore+window
	}

	var pv, bestPV PVLine
	for depth := 1; depth <= maxDepth; depth++ {
		pv.Clear()
		score := s.alphabeta(b, alpha, beta, int8(depth), 0, &pv, 0)

		if s.halted {
			if len(bestPV.Moves) == 0 && len(pv.Moves) > 0 {
				bestPV = pv.Clone()
			}
			break
		}

		if score <= alpha || score >= beta {
			window *= 2
			alpha, beta = score-window, score+window
			if alpha < -MaxScore {
				alpha = -MaxScore
			}
			if beta > MaxScore {
				beta = MaxScore
			}
			depth-- // redo this depth with the wider window
			continue
		}

		bestPV = pv.Clone()
		s.prevScore = score
		s.printInfo(b, depth, score, &bestPV)

		window = aspirationWindow
		alpha, beta = score-window, score+window

		if score > Checkmate || score < -Checkmate {
			break
		}
		if s.timing.SoftExceeded() {
			break
		}
	}
	return bestPV.BestMove()
}

func (s *Searcher) printInfo(b *dragontoothmg.Board, depth int, score int32, pv *PVLine) {
	elapsed := s.timing.Elapsed().Milliseconds()
	if elapsed <= 0 {
		elapsed = 1
	}
	nps := s.nodes * 1000 / uint64(elapsed)

	var line strings.Builder
	fmt.Fprintf(&line, "info depth %d score %s %s nodes %d nps %d time %d pv",
		depth, uci.ScoreText(score), uci.WDLText(int(score), gamePly(b)), s.nodes, nps, elapsed)
	for _, move := range pv.Moves {
		line.WriteByte(' ')
		line.WriteString(uci.MoveToText(move, false))
	}
	fmt.Fprintln(s.out, line.String())
}

func gamePly(b *dragontoothmg.Board) int {
	ply := 2 * (int(b.Fullmoveno) - 1)
	if !b.Wtomove {
		ply++
	}
	return ply
}

func (s *Searcher) checkLimits() {
	if s.nodes&2047 == 0 {
		if s.stopFlag.Load() || s.timing.HardExceeded() ||
			(s.limits.Nodes > 0 && s.nodes >= uint64(s.limits.Nodes)) {
			s.halted = true
		}
	}
}

func (s *Searcher) rootMoveAllowed(move dragontoothmg.Move) bool {
	if len(s.limits.SearchMoves) == 0 {
		return true
	}
	for _, allowed := range s.limits.SearchMoves {
		if allowed == move {
			return true
		}
	}
	return false
}

// isRepetition reports whether the current position (top of the repetition
// stack) occurred earlier in the game or search line.
func (s *Searcher) isRepetition() bool {
	top := s.repStack[len(s.repStack)-1]
	for i := len(s.repStack) - 2; i >= 0; i-- {
		if s.repStack[i] == top {
			return true
		}
	}
	return false
}

func (s *Searcher) alphabeta(b *dragontoothmg.Board, alpha, beta int32, depth, ply int8, pvLine *PVLine, prevMove dragontoothmg.Move) int32 {
	s.nodes++
	s.checkLimits()
	if s.halted {
		return 0
	}
	if int(ply) >= MaxDepth {
		return Evaluate(b)
	}

	isRoot := ply == 0
	isPVNode := beta-alpha > 1

	if !isRoot && (s.isRepetition() || b.Halfmoveclock >= 100) {
		return DrawScore
	}

	inCheck := b.OurKingInCheck()
	if inCheck && depth < MaxDepth {
		depth++
	}
	if depth <= 0 {
		return s.quiescence(b, alpha, beta, ply)
	}

	posHash := b.Hash()
	ttMove, usable, ttScore := s.tt.probe(posHash, depth, alpha, beta, ply)
	if usable && !isRoot && !isPVNode {
		return ttScore
	}

	staticScore := Evaluate(b)

	// Reverse futility: a quiet position already far above beta.
	if !inCheck && !isPVNode && !isRoot && depth <= 7 && abs32(beta) < Checkmate &&
		staticScore-rfpMargins[depth] >= beta {
		return staticScore - rfpMargins[depth]
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -MaxScore + int32(ply)
		}
		return DrawScore
	}

	scored := s.scoreMoves(b, moves, ply, ttMove, prevMove)

	var childPV PVLine
	bestScore := -MaxScore
	var bestMove dragontoothmg.Move
	ttFlag := AlphaFlag
	searched := 0
	var quietsTried []dragontoothmg.Move

	for i := 0; i < len(scored.entries); i++ {
		orderNextMove(i, &scored)
		move := scored.entries[i].move
		if isRoot && !s.rootMoveAllowed(move) {
			continue
		}

		isCapture := dragontoothmg.IsCapture(move, b)
		tactical := isCapture || move.Promote() != dragontoothmg.Nothing

		// Futility: hopeless quiet moves near the leaves.
		if searched > 0 && depth <= 7 && !inCheck && !isPVNode && !tactical &&
			abs32(alpha) < Checkmate && staticScore+futilityMargins[depth] <= alpha {
			continue
		}
		if !isCapture {
			quietsTried = append(quietsTried, move)
		}

		unapply := b.Apply(move)
		s.repStack = append(s.repStack, b.Hash())
		searched++

		childPV.Clear()
		var score int32
		if searched == 1 {
			score = -s.alphabeta(b, -beta, -alpha, depth-1, ply+1, &childPV, move)
		} else {
			var reduction int8
			if int(depth) >= lmrDepthLimit && searched > lmrMoveLimit && !tactical && !inCheck {
				mc := searched
				if mc > 63 {
					mc = 63
				}
				reduction = lmrTable[depth][mc]
			}
			score = -s.alphabeta(b, -(alpha + 1), -alpha, depth-1-reduction, ply+1, &childPV, move)
			if score > alpha && reduction > 0 {
				score = -s.alphabeta(b, -(alpha + 1), -alpha, depth-1, ply+1, &childPV, move)
			}
			if score > alpha && score < beta {
				score = -s.alphabeta(b, -beta, -alpha, depth-1, ply+1, &childPV, move)
			}
		}

		s.repStack = s.repStack[:len(s.repStack)-1]
		unapply()

		if s.halted {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if score >= beta {
			ttFlag = BetaFlag
			if !isCapture {
				s.killers.Insert(move, ply)
				s.storeCounter(b.Wtomove, prevMove, move)
				s.bumpHistory(b.Wtomove, move, depth)
				for _, failed := range quietsTried {
					if failed != move {
						s.dropHistory(b.Wtomove, failed)
					}
				}
			}
			break
		}
		if score > alpha {
			alpha = score
			ttFlag = ExactFlag
			pvLine.Update(move, &childPV)
		}
	}

	if searched == 0 {
		// Only possible at the root with a searchmoves filter that matched
		// nothing, or when futility skipped every move.
		return alpha
	}

	s.tt.store(posHash, depth, ply, bestMove, bestScore, ttFlag)
	return bestScore
}

func (s *Searcher) quiescence(b *dragontoothmg.Board, alpha, beta int32, ply int8) int32 {
	s.nodes++
	s.checkLimits()
	if s.halted {
		return 0
	}

	standPat := Evaluate(b)
	if int(ply) >= MaxDepth {
		return standPat
	}

	inCheck := b.OurKingInCheck()
	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -MaxScore + int32(ply)
		}
		return DrawScore
	}

	bestScore := standPat
	if inCheck {
		// All evasions get searched; stand pat is meaningless in check.
		bestScore = -MaxScore
	} else {
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	scored := s.scoreMoves(b, moves, ply, 0, 0)
	for i := 0; i < len(scored.entries); i++ {
		orderNextMove(i, &scored)
		move := scored.entries[i].move
		if !inCheck && !dragontoothmg.IsCapture(move, b) &&
			move.Promote() == dragontoothmg.Nothing {
			continue
		}

		unapply := b.Apply(move)
		s.repStack = append(s.repStack, b.Hash())
		score := -s.quiescence(b, -beta, -alpha, ply+1)
		s.repStack = s.repStack[:len(s.repStack)-1]
		unapply()

		if s.halted {
			return 0
		}
		if score > bestScore {
			bestScore = score
		}
		if score >= beta {
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return bestScore
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

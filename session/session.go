// Package session keeps the state of one board sitting: the live position,
// the move log in the three forms the front end needs (typed coordinate
// text, decoded moves for replay, and numbered display notation), and the
// optional persistent journal.
package session

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/engine"
	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/hardware"
	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/journal"
	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/uci"
)

var (
	ErrMoveFormat  = errors.New("invalid move format")
	ErrIllegalMove = errors.New("not a legal move")
)

// The board always answers bestmove at this depth.
const bestMoveDepth = 22

type Session struct {
	board   dragontoothmg.Board
	baseFEN string

	log     []string             // coordinate text as typed, one entry per ply
	replay  []dragontoothmg.Move // decoded moves, replayable from baseFEN
	records []string             // numbered display notation, e.g. "1. e4"
	hashes  []uint64             // position hashes, base first, one per ply after

	journal *journal.Store
}

func New() *Session {
	s := &Session{}
	s.reset(dragontoothmg.Startpos)
	return s
}

// AttachJournal routes subsequent moves into the given store. Pass nil to
// run without persistence.
func (s *Session) AttachJournal(store *journal.Store) {
	s.journal = store
}

func (s *Session) reset(fen string) {
	s.baseFEN = fen
	s.board = dragontoothmg.ParseFen(fen)
	s.log = s.log[:0]
	s.replay = s.replay[:0]
	s.records = s.records[:0]
	s.hashes = append(s.hashes[:0], s.board.Hash())
	s.journal.Reset()
}

func (s *Session) Board() *dragontoothmg.Board {
	return &s.board
}

func (s *Session) BaseFEN() string {
	return s.baseFEN
}

// MoveLog returns a copy of the coordinate-text history.
func (s *Session) MoveLog() []string {
	return slices.Clone(s.log)
}

// Records returns a copy of the numbered display notation history.
func (s *Session) Records() []string {
	return slices.Clone(s.records)
}

// HashHistory returns the position hashes seen this session, base position
// first. The search uses them for repetition detection.
func (s *Session) HashHistory() []uint64 {
	return slices.Clone(s.hashes)
}

// The board controller always sends exactly four characters; promotion
// texts only arrive through position commands. Anything four characters
// long falls through to the decode step, which answers for legality.
func wellFormed(text string) bool {
	return len(text) == 4
}

// append records a decoded legal move in all histories and plays it on the
// board. The notation is rendered before the move is applied.
func (s *Session) append(text string, move dragontoothmg.Move) string {
	record := strconv.Itoa(len(s.records)+1) + ". " + uci.SANText(&s.board, move)
	s.board.Apply(move)
	s.log = append(s.log, text)
	s.replay = append(s.replay, move)
	s.records = append(s.records, record)
	s.hashes = append(s.hashes, s.board.Hash())
	s.journal.AppendMove(len(s.log), text, s.board.ToFen())
	return record
}

// RecordMove validates and plays one typed move. On any error the session
// is left exactly as it was: no history gains an entry and the board does
// not change.
func (s *Session) RecordMove(text string) (string, error) {
	if !wellFormed(text) {
		return "", ErrMoveFormat
	}
	move := uci.TextToMove(&s.board, text)
	if move == uci.MoveNone {
		return "", ErrIllegalMove
	}
	return s.append(text, move), nil
}

// RemoveLastMove takes back the most recent move by replaying the remaining
// log from the base position. A no-op on an empty log.
func (s *Session) RemoveLastMove() {
	if len(s.log) == 0 {
		return
	}
	s.log = s.log[:len(s.log)-1]
	s.replay = s.replay[:len(s.replay)-1]
	s.records = s.records[:len(s.records)-1]
	s.hashes = s.hashes[:len(s.hashes)-1]
	s.journal.RemoveLastMove()

	s.board = dragontoothmg.ParseFen(s.baseFEN)
	for _, move := range s.replay {
		s.board.Apply(move)
	}
}

// SetPosition loads a new base position and plays the request's move list
// on top of it, stopping at the first move that fails to decode. A request
// with a malformed FEN leaves the session untouched.
func (s *Session) SetPosition(req *uci.PositionRequest) {
	if req == nil {
		return
	}
	fen := dragontoothmg.Startpos
	if !req.Startpos {
		if len(strings.Fields(req.FEN)) != 6 {
			return
		}
		fen = req.FEN
	}
	s.reset(fen)
	for _, text := range req.Moves {
		move := uci.TextToMove(&s.board, text)
		if move == uci.MoveNone {
			break
		}
		s.append(text, move)
	}
}

// HistoryListing renders the numbered notation history on one line.
func (s *Session) HistoryListing() string {
	return "PGN vector: " + strings.Join(s.records, " ") + "\n"
}

// PieceRaise reports which square the player must lift a piece from to
// mirror the opponent's last move, with its actuator encoding and grid.
func (s *Session) PieceRaise() string {
	if len(s.log) == 0 {
		return "No pieces raised\n"
	}
	last := len(s.log) - 1
	return hardware.RaiseReport(s.log[last], s.records[last])
}

// PositionString renders the current position as a diagram plus FEN.
func (s *Session) PositionString() string {
	return uci.BoardText(&s.board)
}

// BestMove runs the fixed-depth search the physical board uses when asked
// to reply, and returns the chosen move's coordinate text.
func (s *Session) BestMove(searcher *engine.Searcher) string {
	return searcher.StartSearch(&s.board, s.HashHistory(), engine.Limits{Depth: bestMoveDepth})
}

// Search runs the search with explicit limits, decoding any searchmoves
// restriction against the current position.
func (s *Session) Search(searcher *engine.Searcher, req *uci.SearchRequest) string {
	limits := engine.Limits{
		WTime:     req.WTime,
		BTime:     req.BTime,
		WInc:      req.WInc,
		BInc:      req.BInc,
		MovesToGo: req.MovesToGo,
		Depth:     req.Depth,
		Nodes:     req.Nodes,
		MoveTime:  req.MoveTime,
		Mate:      req.Mate,
		Perft:     req.Perft,
		Infinite:  req.Infinite,
		Ponder:    req.Ponder,
	}
	for _, text := range req.SearchMoves {
		if move := uci.TextToMove(&s.board, text); move != uci.MoveNone {
			limits.SearchMoves = append(limits.SearchMoves, move)
		}
	}
	return searcher.StartSearch(&s.board, s.HashHistory(), limits)
}

package uci

import (
	"strconv"
	"strings"
)

// RequestKind enumerates the commands the board session understands.
type RequestKind int

const (
	Unknown RequestKind = iota
	SetPosition
	StartSearch
	RecordMove
	UndoMove
	PrintPosition
	PieceRaise
	History
	BestMove
	Quit
)

// PositionRequest is a parsed "position" command. Move texts are carried
// verbatim; decoding against the board happens at apply time so that
// application can stop at the first token that fails to decode.
type PositionRequest struct {
	Startpos bool
	FEN      string
	Moves    []string
}

// SearchRequest is a parsed "go" command.
type SearchRequest struct {
	WTime, BTime int
	WInc, BInc   int
	MovesToGo    int
	Depth        int
	Nodes        int64
	MoveTime     int
	Mate         int
	Perft        int
	Infinite     bool
	Ponder       bool
	SearchMoves  []string
}

// Request is one decoded command line.
type Request struct {
	Kind     RequestKind
	Raw      string
	MoveText string
	Position *PositionRequest
	Search   *SearchRequest
}

// Parse decodes a single command line into a structured request. Blank lines
// and unrecognized commands come back as Unknown with the raw line attached.
func Parse(line string) Request {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Request{Kind: Unknown, Raw: line}
	}

	switch tokens[0] {
	case "position":
		return parsePosition(line, tokens)
	case "go":
		return parseGo(line, tokens)
	case "move":
		var text string
		if len(tokens) > 1 {
			text = tokens[1]
		}
		return Request{Kind: RecordMove, Raw: line, MoveText: text}
	case "removelastmove":
		return Request{Kind: UndoMove, Raw: line}
	case "printposition":
		return Request{Kind: PrintPosition, Raw: line}
	case "getpieceraise":
		return Request{Kind: PieceRaise, Raw: line}
	case "getPGN":
		return Request{Kind: History, Raw: line}
	case "bestmove":
		return Request{Kind: BestMove, Raw: line}
	case "quit", "stop":
		return Request{Kind: Quit, Raw: line}
	default:
		return Request{Kind: Unknown, Raw: line}
	}
}

func parsePosition(line string, tokens []string) Request {
	req := Request{Kind: SetPosition, Raw: line}
	if len(tokens) < 2 {
		return req // no subcommand; Position stays nil and the request is a no-op
	}

	pos := &PositionRequest{}
	i := 2
	switch tokens[1] {
	case "startpos":
		pos.Startpos = true
	case "fen":
		var fen []string
		for ; i < len(tokens) && tokens[i] != "moves"; i++ {
			fen = append(fen, tokens[i])
		}
		// An empty FEN is carried through and left for the rules engine
		// to reject; this layer does not validate FEN syntax.
		pos.FEN = strings.Join(fen, " ")
	default:
		return req
	}

	if i < len(tokens) && tokens[i] == "moves" {
		pos.Moves = append(pos.Moves, tokens[i+1:]...)
	}
	req.Position = pos
	return req
}

func parseGo(line string, tokens []string) Request {
	s := &SearchRequest{}
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "searchmoves":
			// Must be the last clause: everything after it is a move text.
			s.SearchMoves = append(s.SearchMoves, tokens[i+1:]...)
			i = len(tokens)
		case "wtime":
			i++
			s.WTime = intOption(tokens, i)
		case "btime":
			i++
			s.BTime = intOption(tokens, i)
		case "winc":
			i++
			s.WInc = intOption(tokens, i)
		case "binc":
			i++
			s.BInc = intOption(tokens, i)
		case "movestogo":
			i++
			s.MovesToGo = intOption(tokens, i)
		case "depth":
			i++
			s.Depth = intOption(tokens, i)
		case "nodes":
			i++
			s.Nodes = int64Option(tokens, i)
		case "movetime":
			i++
			s.MoveTime = intOption(tokens, i)
		case "mate":
			i++
			s.Mate = intOption(tokens, i)
		case "perft":
			i++
			s.Perft = intOption(tokens, i)
		case "infinite":
			s.Infinite = true
		case "ponder":
			s.Ponder = true
		default:
			// Unrecognized go options are silently ignored.
		}
	}
	return Request{Kind: StartSearch, Raw: line, Search: s}
}

func intOption(tokens []string, i int) int {
	if i >= len(tokens) {
		return 0
	}
	v, _ := strconv.Atoi(tokens[i])
	return v
}

func int64Option(tokens []string, i int) int64 {
	if i >= len(tokens) {
		return 0
	}
	v, _ := strconv.ParseInt(tokens[i], 10, 64)
	return v
}

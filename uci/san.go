package uci

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

const pieceInitials = " PNBRQK"

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

// SANText renders a legal move in standard algebraic notation, including
// disambiguation and check/checkmate markers, for the side to move on the
// given board. Falls back to coordinate notation if the from-square is
// unexpectedly empty. The board is left unchanged.
func SANText(board *dragontoothmg.Board, m dragontoothmg.Move) string {
	own := &board.White
	if !board.Wtomove {
		own = &board.Black
	}

	from, to := m.From(), m.To()
	pt, occupied := pieceTypeOn(own, from)
	if !occupied {
		return MoveToText(m, false)
	}

	var sb strings.Builder

	fileDelta := int(from%8) - int(to%8)
	if pt == dragontoothmg.King && (fileDelta == 2 || fileDelta == -2) {
		if to > from {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
		sb.WriteString(checkSuffix(board, m))
		return sb.String()
	}

	isCapture := dragontoothmg.IsCapture(m, board) ||
		(pt == dragontoothmg.Pawn && fileDelta != 0) // en passant target square is empty

	if pt != dragontoothmg.Pawn {
		sb.WriteByte(pieceInitials[pt])
		sb.WriteString(disambiguation(board, m, pt, own))
	}
	if isCapture {
		if pt == dragontoothmg.Pawn {
			sb.WriteByte('a' + from%8)
		}
		sb.WriteByte('x')
	}
	sb.WriteString(SquareText(to))
	if p := m.Promote(); p != dragontoothmg.Nothing {
		sb.WriteByte('=')
		sb.WriteByte(pieceInitials[p])
	}
	sb.WriteString(checkSuffix(board, m))
	return sb.String()
}

// disambiguation returns the file/rank qualifier needed when another piece of
// the same type can legally reach the same destination.
func disambiguation(board *dragontoothmg.Board, m dragontoothmg.Move, pt dragontoothmg.Piece, own *dragontoothmg.Bitboards) string {
	from, to := m.From(), m.To()

	var candidates []uint8
	for _, other := range board.GenerateLegalMoves() {
		if other == m || other.To() != to || other.From() == from {
			continue
		}
		if opt, ok := pieceTypeOn(own, other.From()); ok && opt == pt {
			candidates = append(candidates, other.From())
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range candidates {
		if sq%8 == from%8 {
			sameFile = true
		}
		if sq/8 == from/8 {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string('a' + from%8)
	case !sameRank:
		return string('1' + from/8)
	default:
		return SquareText(from)
	}
}

func checkSuffix(board *dragontoothmg.Board, m dragontoothmg.Move) string {
	unapply := board.Apply(m)
	inCheck := board.OurKingInCheck()
	hasReplies := len(board.GenerateLegalMoves()) > 0
	unapply()

	switch {
	case inCheck && !hasReplies:
		return "#"
	case inCheck:
		return "+"
	}
	return ""
}

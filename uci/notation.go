package uci

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Move sentinels. The zero Move is dragontoothmg's "no move" value. MoveNull
// mirrors the protocol null move ("0000"); b1b1 can never be produced by the
// legal move generator, so the value is safe to use as a marker.
const (
	MoveNone dragontoothmg.Move = 0
	MoveNull dragontoothmg.Move = 1 | 1<<6
)

const promotionLetters = " pnbrqk"

// SquareText converts a 0-63 square index to algebraic notation (g1, a7, ...).
func SquareText(sq uint8) string {
	return string([]byte{'a' + sq%8, '1' + sq/8})
}

// MoveToText converts a canonical move to coordinate notation (g1f3, a7a8q).
// dragontoothmg encodes castling by the king's final square (e1g1 style) in
// both standard and 960 mode, so no destination remap is needed here; the
// flag is kept for parity with the rules engine's own signature.
func MoveToText(m dragontoothmg.Move, chess960 bool) string {
	if m == MoveNone {
		return "(none)"
	}
	if m == MoveNull {
		return "0000"
	}
	_ = chess960
	text := SquareText(m.From()) + SquareText(m.To())
	if p := m.Promote(); p != dragontoothmg.Nothing {
		text += string(promotionLetters[p])
	}
	return text
}

// TextToMove converts coordinate notation to the matching legal move on the
// given board, or MoveNone if no legal move has that text form. Some GUIs
// send the promotion piece in uppercase, so a 5th character is lowercased
// before matching. Legality is decided entirely by the move generator.
func TextToMove(board *dragontoothmg.Board, text string) dragontoothmg.Move {
	if len(text) == 5 {
		text = text[:4] + strings.ToLower(text[4:])
	}
	for _, m := range board.GenerateLegalMoves() {
		if MoveToText(m, false) == text {
			return m
		}
	}
	return MoveNone
}

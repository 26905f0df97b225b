package uci

import (
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

const boardFrame = " +---+---+---+---+---+---+---+---+\n"

func pieceCharAt(board *dragontoothmg.Board, sq uint8) byte {
	if pt, ok := pieceTypeOn(&board.White, sq); ok {
		return pieceInitials[pt]
	}
	if pt, ok := pieceTypeOn(&board.Black, sq); ok {
		return pieceInitials[pt] + ('a' - 'A')
	}
	return ' '
}

// BoardText renders the position as a framed ASCII diagram, ranks 8 down to
// 1, with the FEN below it. White pieces are uppercase, black lowercase.
func BoardText(board *dragontoothmg.Board) string {
	var sb strings.Builder
	for rank := uint8(8); rank >= 1; rank-- {
		sb.WriteString(boardFrame)
		sb.WriteString(" |")
		for file := uint8(0); file < 8; file++ {
			sq := file + 8*(rank-1)
			sb.WriteByte(' ')
			sb.WriteByte(pieceCharAt(board, sq))
			sb.WriteString(" |")
		}
		sb.WriteByte(' ')
		sb.WriteByte('0' + rank)
		sb.WriteByte('\n')
	}
	sb.WriteString(boardFrame)
	sb.WriteString("   a   b   c   d   e   f   g   h\n")
	sb.WriteString("\nFen: ")
	sb.WriteString(board.ToFen())
	sb.WriteByte('\n')
	return sb.String()
}

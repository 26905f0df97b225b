// Package hardware derives the actuator-facing encoding of board squares:
// the 0-63 lift index, its binary wire form, and the raised-square diagram
// the board controller displays.
package hardware

import (
	"strconv"
	"strings"
)

const gridFrame = "+---+---+---+---+---+---+---+---+\n"

func fileOffset(c byte) int {
	if c >= 'A' && c <= 'H' {
		c += 'a' - 'A'
	}
	return int(c - 'a')
}

// SquareIndex maps an algebraic square to the 0-63 actuator index, ordered
// bottom left to top right (a1=0, h1=7, a2=8, ..., h8=63). The file letter
// may be uppercase.
func SquareIndex(square string) int {
	return fileOffset(square[0]) + 8*(int(square[1]-'0')-1)
}

// IndexBinary renders an index as binary digits, most significant bit first,
// without leading zeros. Index 0 renders as "0" so the controller always
// receives at least one digit.
func IndexBinary(index int) string {
	return strconv.FormatInt(int64(index), 2)
}

// RaisedSquareGrid draws an 8x8 framed grid, ranks 8 down to 1, with exactly
// one cell marked '#' at the given square.
func RaisedSquareGrid(square string) string {
	file := fileOffset(square[0])
	rank := int(square[1] - '0')

	var sb strings.Builder
	for r := 8; r >= 1; r-- {
		sb.WriteString(gridFrame)
		for f := 0; f < 8; f++ {
			sb.WriteString("| ")
			if r == rank && f == file {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("|  ")
		sb.WriteString(strconv.Itoa(r))
		sb.WriteByte('\n')
	}
	sb.WriteString(gridFrame)
	sb.WriteString("  a   b   c   d   e   f   g   h\n")
	return sb.String()
}

// RaiseReport composes the full piece-raise output for the most recent move:
// the move record, the square to raise, its decimal index, the binary wire
// form, and the grid. lastMove is the move's coordinate text; lastRecord is
// the display notation shown on the "Last Move" line.
func RaiseReport(lastMove, lastRecord string) string {
	square := lastMove[2:4]
	index := SquareIndex(square)

	var sb strings.Builder
	sb.WriteString("\nLast Move:\t\t")
	sb.WriteString(lastRecord)
	sb.WriteString("\nPiece to raise:\t\t")
	sb.WriteString(square)
	sb.WriteString("\nDecimal Equivalent\t")
	sb.WriteString(strconv.Itoa(index))
	sb.WriteString("\nBinary Output:\t\t")
	sb.WriteString(IndexBinary(index))
	sb.WriteByte('\n')
	sb.WriteString(RaisedSquareGrid(square))
	return sb.String()
}

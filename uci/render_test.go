package uci

import (
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestBoardTextStartpos(t *testing.T) {
	board := dragontoothmg.ParseFen(dragontoothmg.Startpos)
	text := BoardText(&board)

	if !strings.Contains(text, " | r | n | b | q | k | b | n | r | 8") {
		t.Error("missing black back rank")
	}
	if !strings.Contains(text, " | P | P | P | P | P | P | P | P | 2") {
		t.Error("missing white pawn rank")
	}
	if !strings.Contains(text, "   a   b   c   d   e   f   g   h") {
		t.Error("missing file footer")
	}
	if !strings.Contains(text, "\nFen: "+dragontoothmg.Startpos) {
		t.Error("missing FEN line")
	}
	if got := strings.Count(text, boardFrame); got != 9 {
		t.Errorf("frame count = %d, want 9", got)
	}
}

package uci

import "testing"

func TestParseCommandKinds(t *testing.T) {
	cases := []struct {
		line string
		kind RequestKind
	}{
		{"move e2e4", RecordMove},
		{"removelastmove", UndoMove},
		{"printposition", PrintPosition},
		{"getpieceraise", PieceRaise},
		{"getPGN", History},
		{"bestmove", BestMove},
		{"quit", Quit},
		{"stop", Quit},
		{"", Unknown},
		{"   ", Unknown},
		{"frobnicate", Unknown},
		// Command matching is exact case.
		{"getpgn", Unknown},
		{"Move e2e4", Unknown},
	}
	for _, tc := range cases {
		if got := Parse(tc.line).Kind; got != tc.kind {
			t.Errorf("Parse(%q).Kind = %v, want %v", tc.line, got, tc.kind)
		}
	}
}

func TestParseMoveText(t *testing.T) {
	req := Parse("move e2e4")
	if req.MoveText != "e2e4" {
		t.Errorf("MoveText = %q, want e2e4", req.MoveText)
	}
	if req = Parse("move"); req.MoveText != "" {
		t.Errorf("bare move should carry empty text, got %q", req.MoveText)
	}
}

func TestParsePositionStartpos(t *testing.T) {
	req := Parse("position startpos moves e2e4 e7e5")
	if req.Kind != SetPosition || req.Position == nil {
		t.Fatalf("unexpected request %+v", req)
	}
	if !req.Position.Startpos {
		t.Error("Startpos not set")
	}
	if len(req.Position.Moves) != 2 || req.Position.Moves[1] != "e7e5" {
		t.Errorf("Moves = %v", req.Position.Moves)
	}
}

func TestParsePositionFen(t *testing.T) {
	fen := "8/P7/8/8/8/8/8/k1K5 w - - 0 1"
	req := Parse("position fen " + fen + " moves a7a8q")
	if req.Position == nil {
		t.Fatal("Position is nil")
	}
	if req.Position.FEN != fen {
		t.Errorf("FEN = %q, want %q", req.Position.FEN, fen)
	}
	if len(req.Position.Moves) != 1 {
		t.Errorf("Moves = %v", req.Position.Moves)
	}
}

func TestParsePositionNoSubcommand(t *testing.T) {
	req := Parse("position")
	if req.Kind != SetPosition {
		t.Fatalf("Kind = %v", req.Kind)
	}
	if req.Position != nil {
		t.Error("bare position should carry a nil Position")
	}
}

func TestParseGoClock(t *testing.T) {
	req := Parse("go wtime 300000 btime 290000 winc 2000 binc 1000 movestogo 40")
	s := req.Search
	if s == nil {
		t.Fatal("Search is nil")
	}
	if s.WTime != 300000 || s.BTime != 290000 || s.WInc != 2000 || s.BInc != 1000 || s.MovesToGo != 40 {
		t.Errorf("clock fields = %+v", s)
	}
}

func TestParseGoBounds(t *testing.T) {
	req := Parse("go depth 10 nodes 5000 movetime 100 mate 3 perft 5 infinite ponder")
	s := req.Search
	if s.Depth != 10 || s.Nodes != 5000 || s.MoveTime != 100 || s.Mate != 3 || s.Perft != 5 {
		t.Errorf("bound fields = %+v", s)
	}
	if !s.Infinite || !s.Ponder {
		t.Error("flags not set")
	}
}

func TestParseGoSearchMovesConsumesRest(t *testing.T) {
	req := Parse("go depth 5 searchmoves e2e4 d2d4 infinite")
	s := req.Search
	if s.Depth != 5 {
		t.Errorf("Depth = %d", s.Depth)
	}
	// Everything after searchmoves is a move text, even known option names.
	want := []string{"e2e4", "d2d4", "infinite"}
	if len(s.SearchMoves) != len(want) {
		t.Fatalf("SearchMoves = %v", s.SearchMoves)
	}
	for i := range want {
		if s.SearchMoves[i] != want[i] {
			t.Errorf("SearchMoves[%d] = %q, want %q", i, s.SearchMoves[i], want[i])
		}
	}
	if s.Infinite {
		t.Error("infinite after searchmoves must not set the flag")
	}
}

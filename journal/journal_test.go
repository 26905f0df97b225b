package journal

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moves.db")
	store, err := Open(path, "startpos")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestJournalRoundTrip(t *testing.T) {
	store := openTestStore(t)
	if store.SessionID() == "" {
		t.Fatal("empty session id")
	}

	store.AppendMove(1, "e2e4", "fen-after-1")
	store.AppendMove(2, "e7e5", "fen-after-2")

	moves, err := store.Moves()
	if err != nil {
		t.Fatalf("Moves: %v", err)
	}
	if len(moves) != 2 || moves[0] != "e2e4" || moves[1] != "e7e5" {
		t.Errorf("moves = %v", moves)
	}
}

func TestJournalRemoveLastMove(t *testing.T) {
	store := openTestStore(t)
	store.AppendMove(1, "e2e4", "fen1")
	store.AppendMove(2, "e7e5", "fen2")
	store.RemoveLastMove()

	moves, err := store.Moves()
	if err != nil {
		t.Fatalf("Moves: %v", err)
	}
	if len(moves) != 1 || moves[0] != "e2e4" {
		t.Errorf("moves = %v", moves)
	}

	// Removing past empty must not error or panic.
	store.RemoveLastMove()
	store.RemoveLastMove()
	if moves, _ = store.Moves(); len(moves) != 0 {
		t.Errorf("moves = %v, want empty", moves)
	}
}

func TestJournalReset(t *testing.T) {
	store := openTestStore(t)
	store.AppendMove(1, "e2e4", "fen1")
	store.AppendMove(2, "e7e5", "fen2")

	store.Reset()
	if moves, err := store.Moves(); err != nil || len(moves) != 0 {
		t.Fatalf("after reset: moves=%v err=%v", moves, err)
	}

	// Numbering restarts from 1 without a key collision.
	store.AppendMove(1, "d2d4", "fen3")
	moves, err := store.Moves()
	if err != nil {
		t.Fatalf("Moves: %v", err)
	}
	if len(moves) != 1 || moves[0] != "d2d4" {
		t.Errorf("moves = %v, want [d2d4]", moves)
	}
}

func TestJournalNilStoreIsNoop(t *testing.T) {
	var store *Store
	store.AppendMove(1, "e2e4", "fen")
	store.RemoveLastMove()
	store.Reset()
	if moves, err := store.Moves(); err != nil || moves != nil {
		t.Errorf("nil store: moves=%v err=%v", moves, err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("nil close: %v", err)
	}
}

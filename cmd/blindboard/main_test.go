package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/engine"
	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/session"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read: %v", err)
	}
	return buf.String()
}

func TestDispatchEchoesUnknownLines(t *testing.T) {
	sess := session.New()
	searcher := engine.NewSearcher()
	searcher.SetOutput(io.Discard)

	// Blank and whitespace-only lines are unknown commands too, echoed
	// back verbatim like any other unrecognized line.
	for _, line := range []string{"", "   ", "frobnicate"} {
		out := captureStdout(t, func() {
			if quit := dispatch(sess, searcher, line); quit {
				t.Errorf("dispatch(%q) requested quit", line)
			}
		})
		if want := "Unknown command: " + line + "\n"; out != want {
			t.Errorf("dispatch(%q) output %q, want %q", line, out, want)
		}
	}
}

func TestDispatchQuit(t *testing.T) {
	sess := session.New()
	searcher := engine.NewSearcher()
	searcher.SetOutput(io.Discard)

	for _, line := range []string{"quit", "stop"} {
		if !dispatch(sess, searcher, line) {
			t.Errorf("dispatch(%q) should end the session", line)
		}
	}
}

func TestDispatchMoveErrors(t *testing.T) {
	sess := session.New()
	searcher := engine.NewSearcher()
	searcher.SetOutput(io.Discard)

	out := captureStdout(t, func() { dispatch(sess, searcher, "move e2") })
	if out != "Invalid move format\n" {
		t.Errorf("short move output %q", out)
	}
	out = captureStdout(t, func() { dispatch(sess, searcher, "move e2e5") })
	if out != "Not a legal move\n" {
		t.Errorf("illegal move output %q", out)
	}
}

// Command blindboard is the text front end of the blind chessboard: it
// reads board-session commands from the command line or stdin, keeps the
// game state, and answers with the piece-raise encodings, position diagrams
// and engine replies the board controller consumes.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/engine"
	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/journal"
	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/session"
	"github.com/JulianETMatthews/Stockfish-BlindChessboardProject/uci"
)

const commandTrailer = "\n*****************************************\n\n"

func main() {
	dbPath := flag.String("db", "", "path to the move journal database (empty disables persistence)")
	flag.Parse()

	sess := session.New()
	searcher := engine.NewSearcher()

	if *dbPath != "" {
		store, err := journal.Open(*dbPath, sess.BaseFEN())
		if err != nil {
			log.Printf("journal disabled: %v", err)
		} else {
			defer store.Close()
			sess.AttachJournal(store)
		}
	}

	// One-shot mode: the whole command is given as arguments and the
	// process exits after answering.
	if flag.NArg() > 0 {
		dispatch(sess, searcher, strings.Join(flag.Args(), " "))
		return
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		runInteractive(sess, searcher)
	} else {
		runPiped(sess, searcher)
	}
}

func runInteractive(sess *session.Session, searcher *engine.Searcher) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "blindboard> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".blindboard_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		log.Printf("falling back to plain input: %v", err)
		runPiped(sess, searcher)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil { // io.EOF
			searcher.RequestStop()
			return
		}
		if dispatch(sess, searcher, line) {
			return
		}
		fmt.Print(commandTrailer)
	}
}

func runPiped(sess *session.Session, searcher *engine.Searcher) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if dispatch(sess, searcher, scanner.Text()) {
			return
		}
		fmt.Print(commandTrailer)
	}
	searcher.RequestStop()
}

// dispatch executes one command line and reports whether the session should
// end.
func dispatch(sess *session.Session, searcher *engine.Searcher, line string) bool {
	req := uci.Parse(line)
	switch req.Kind {
	case uci.SetPosition:
		sess.SetPosition(req.Position)
	case uci.StartSearch:
		sess.Search(searcher, req.Search)
	case uci.RecordMove:
		if _, err := sess.RecordMove(req.MoveText); err != nil {
			if errors.Is(err, session.ErrMoveFormat) {
				fmt.Println("Invalid move format")
			} else {
				fmt.Println("Not a legal move")
			}
		} else {
			fmt.Print(sess.PositionString())
			fmt.Print(sess.HistoryListing())
			fmt.Print(sess.PieceRaise())
		}
	case uci.UndoMove:
		sess.RemoveLastMove()
	case uci.PrintPosition:
		fmt.Print(sess.PositionString())
	case uci.PieceRaise:
		fmt.Print(sess.PieceRaise())
	case uci.History:
		fmt.Print(sess.HistoryListing())
	case uci.BestMove:
		sess.BestMove(searcher)
	case uci.Quit:
		searcher.RequestStop()
		return true
	case uci.Unknown:
		fmt.Println("Unknown command:", line)
	}
	return false
}

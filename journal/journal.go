// Package journal persists the session's move log to a SQLite database so a
// game survives a board power cycle. All writes are best effort: a failing
// database degrades the journal to a no-op instead of taking the session
// down with it.
package journal

import (
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db        *sql.DB
	sessionID string
	degraded  bool
}

// Open creates or opens the database at path and registers a fresh session
// row for this run.
func Open(path, baseFEN string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	id := uuid.NewString()
	_, err = db.Exec(
		`INSERT INTO sessions (id, started_at, base_fen) VALUES (?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), baseFEN,
	)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, sessionID: id}, nil
}

func (s *Store) SessionID() string {
	return s.sessionID
}

func (s *Store) fail(op string, err error) {
	log.Printf("journal: %s failed, disabling journal: %v", op, err)
	s.degraded = true
}

// AppendMove records a played move. number is 1-based and matches the
// session's flat move log.
func (s *Store) AppendMove(number int, moveText, fenAfter string) {
	if s == nil || s.degraded {
		return
	}
	_, err := s.db.Exec(
		`INSERT INTO moves (session_id, move_number, move_text, fen_after, played_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.sessionID, number, moveText, fenAfter,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		s.fail("append", err)
	}
}

// Reset deletes all of the session's recorded moves, matching a position
// command that restarts the game within the same run. Move numbering starts
// over from 1 afterwards.
func (s *Store) Reset() {
	if s == nil || s.degraded {
		return
	}
	_, err := s.db.Exec(`DELETE FROM moves WHERE session_id = ?`, s.sessionID)
	if err != nil {
		s.fail("reset", err)
	}
}

// RemoveLastMove deletes the highest-numbered move of the session, matching
// an undo on the board.
func (s *Store) RemoveLastMove() {
	if s == nil || s.degraded {
		return
	}
	_, err := s.db.Exec(
		`DELETE FROM moves WHERE session_id = ? AND move_number =
		 (SELECT MAX(move_number) FROM moves WHERE session_id = ?)`,
		s.sessionID, s.sessionID,
	)
	if err != nil {
		s.fail("remove", err)
	}
}

// Moves returns the session's move texts in play order.
func (s *Store) Moves() ([]string, error) {
	if s == nil {
		return nil, nil
	}
	rows, err := s.db.Query(
		`SELECT move_text FROM moves WHERE session_id = ? ORDER BY move_number`,
		s.sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var moves []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		moves = append(moves, text)
	}
	return moves, rows.Err()
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

package journal

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id         TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	base_fen   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS moves (
	session_id  TEXT NOT NULL REFERENCES sessions(id),
	move_number INTEGER NOT NULL,
	move_text   TEXT NOT NULL,
	fen_after   TEXT NOT NULL,
	played_at   TEXT NOT NULL,
	PRIMARY KEY (session_id, move_number)
);

CREATE INDEX IF NOT EXISTS idx_moves_session ON moves(session_id);
`

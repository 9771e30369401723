package main

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// SessionLog persists one row per scenario run, keyed by the solver
// session's UUID, so repeated CLI invocations build up an on-disk history
// that can be inspected across runs instead of only the last one's stdout.
type SessionLog struct {
	db *sql.DB
}

// OpenSessionLog opens (creating if necessary) a SQLite database at path and
// ensures the runs table exists.
func OpenSessionLog(path string) (*SessionLog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	const schema = `CREATE TABLE IF NOT EXISTS runs (
		session_id TEXT NOT NULL,
		scenario   TEXT NOT NULL,
		passed     BOOLEAN NOT NULL,
		detail     TEXT NOT NULL,
		ran_at     DATETIME NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SessionLog{db: db}, nil
}

func (l *SessionLog) Close() error {
	return l.db.Close()
}

// Record appends one outcome row for the given session.
func (l *SessionLog) Record(session uuid.UUID, scenario string, passed bool, detail string) error {
	_, err := l.db.Exec(
		`INSERT INTO runs (session_id, scenario, passed, detail, ran_at) VALUES (?, ?, ?, ?, ?)`,
		session.String(), scenario, passed, detail, time.Now().UTC(),
	)
	return err
}

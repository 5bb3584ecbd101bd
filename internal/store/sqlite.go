package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	practicesession "github.com/qbank-local/backend/internal/domain/practice_session"
)

const schema = `
CREATE TABLE IF NOT EXISTS progress (
    session_id TEXT PRIMARY KEY,
    document TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// SQLiteStore keeps one progress document per session id, so several
// sessions can share one database file without overwriting each other.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// One connection keeps writers serialized and makes ":memory:" usable.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "apply schema")
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ForSession returns a ProgressStore bound to one session id.
func (s *SQLiteStore) ForSession(sessionID string) ProgressStore {
	return &sessionProgress{db: s.db, sessionID: sessionID}
}

// ListSessions returns the stored session ids, most recently updated first.
func (s *SQLiteStore) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT session_id FROM progress ORDER BY updated_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteSession removes the progress of one session.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM progress WHERE session_id = ?", sessionID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type sessionProgress struct {
	db        *sql.DB
	sessionID string
}

func (p *sessionProgress) Save(ctx context.Context, snap *practicesession.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "encode progress")
	}
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO progress (session_id, document, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at
	`, p.sessionID, string(data), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return errors.Wrap(err, "save progress")
	}
	return nil
}

func (p *sessionProgress) Load(ctx context.Context) (*practicesession.Snapshot, error) {
	var document string
	err := p.db.QueryRowContext(ctx,
		"SELECT document FROM progress WHERE session_id = ?", p.sessionID,
	).Scan(&document)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "load progress")
	}
	return decode("session "+p.sessionID, []byte(document))
}

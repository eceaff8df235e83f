package store

import (
	"database/sql"
	"time"
)

// CreateSession inserts a new session row.
func (db *DB) CreateSession(s Session) error {
	_, err := db.conn.Exec(
		"INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)",
		s.Token, s.UserID,
		s.CreatedAt.UTC().Format(time.RFC3339),
		s.ExpiresAt.UTC().Format(time.RFC3339),
	)
	return err
}

// GetSession returns the session for a token, or nil if none exists.
// Expiry is the caller's concern; expired rows are still returned.
func (db *DB) GetSession(token string) (*Session, error) {
	row := db.conn.QueryRow(
		"SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = ?", token)

	var s Session
	var createdAt, expiresAt string
	err := row.Scan(&s.Token, &s.UserID, &createdAt, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	s.ExpiresAt, _ = time.Parse(time.RFC3339, expiresAt)
	return &s, nil
}

// DeleteSession removes a session row. Deleting a missing token is not an
// error.
func (db *DB) DeleteSession(token string) error {
	_, err := db.conn.Exec("DELETE FROM sessions WHERE token = ?", token)
	return err
}

// DeleteExpiredSessions removes all sessions that expired before now.
func (db *DB) DeleteExpiredSessions(now time.Time) error {
	_, err := db.conn.Exec(
		"DELETE FROM sessions WHERE expires_at < ?", now.UTC().Format(time.RFC3339))
	return err
}

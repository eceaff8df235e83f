package store

import (
	"database/sql"
	"time"
)

// CreateUser inserts a new user row.
func (db *DB) CreateUser(u User) error {
	_, err := db.conn.Exec(
		"INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		u.ID, u.Email, u.PasswordHash, u.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// GetUserByEmail returns the user with the given email, or nil if none.
func (db *DB) GetUserByEmail(email string) (*User, error) {
	row := db.conn.QueryRow(
		"SELECT id, email, password_hash, created_at FROM users WHERE email = ?", email)
	return scanUser(row)
}

// GetUser returns a user by ID, or nil if none.
func (db *DB) GetUser(id string) (*User, error) {
	row := db.conn.QueryRow(
		"SELECT id, email, password_hash, created_at FROM users WHERE id = ?", id)
	return scanUser(row)
}

// FirstUser returns the earliest registered user, or nil when the database
// has no accounts. Local CLI commands use it when no email is given.
func (db *DB) FirstUser() (*User, error) {
	row := db.conn.QueryRow(
		"SELECT id, email, password_hash, created_at FROM users ORDER BY created_at, id LIMIT 1")
	return scanUser(row)
}

// CountUsers returns the number of registered users.
func (db *DB) CountUsers() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	var createdAt string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &u, nil
}

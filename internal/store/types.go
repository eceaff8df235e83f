// Package store provides SQLite database access for tally's users, habits,
// logs, and sessions.
package store

import "time"

// User is a registered account.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a persisted auth session resolved from an opaque cookie token.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

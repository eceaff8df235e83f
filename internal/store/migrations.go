package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			token      TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL REFERENCES users(id),
			created_at TEXT NOT NULL,
			expires_at TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS habits (
			id            TEXT PRIMARY KEY,
			user_id       TEXT NOT NULL REFERENCES users(id),
			name          TEXT NOT NULL,
			type          TEXT NOT NULL,
			unit          TEXT,
			target        REAL,
			frequency     TEXT NOT NULL DEFAULT 'daily',
			days_per_week INTEGER NOT NULL DEFAULT 7,
			archived      BOOLEAN NOT NULL DEFAULT 0,
			created_at    TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS habit_logs (
			id            TEXT PRIMARY KEY,
			habit_id      TEXT NOT NULL REFERENCES habits(id),
			date          TEXT NOT NULL,
			numeric_value REAL,
			boolean_value BOOLEAN,
			created_at    TEXT NOT NULL,
			updated_at    TEXT NOT NULL,
			UNIQUE(habit_id, date)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_habits_user ON habits(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_logs_habit_date ON habit_logs(habit_id, date)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id)`,

		`DELETE FROM schema_version`,
		`INSERT INTO schema_version (version) VALUES (1)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}
	return nil
}

package store

import (
	"database/sql"
	"time"

	"github.com/evanmoss/tally/internal/habit"
)

// CreateHabit inserts a new habit row.
func (db *DB) CreateHabit(h habit.Habit) error {
	_, err := db.conn.Exec(`
		INSERT INTO habits (id, user_id, name, type, unit, target, frequency, days_per_week, archived, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.UserID, h.Name, string(h.Type),
		nullString(h.Unit), nullFloat(h.Target),
		string(h.Frequency), h.DaysPerWeek, h.Archived,
		h.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// GetHabit returns a habit by ID scoped to its owner, or nil if none.
func (db *DB) GetHabit(id, userID string) (*habit.Habit, error) {
	row := db.conn.QueryRow(`
		SELECT id, user_id, name, type, unit, target, frequency, days_per_week, archived, created_at
		FROM habits WHERE id = ? AND user_id = ?`, id, userID)
	h, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ListHabits returns a user's habits ordered by creation time. Archived
// habits are excluded unless includeArchived is set.
func (db *DB) ListHabits(userID string, includeArchived bool) ([]habit.Habit, error) {
	query := `
		SELECT id, user_id, name, type, unit, target, frequency, days_per_week, archived, created_at
		FROM habits WHERE user_id = ?`
	if !includeArchived {
		query += " AND archived = 0"
	}
	query += " ORDER BY created_at, id"

	rows, err := db.conn.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []habit.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// UpdateHabit rewrites a habit's mutable fields.
func (db *DB) UpdateHabit(h habit.Habit) error {
	_, err := db.conn.Exec(`
		UPDATE habits
		SET name = ?, unit = ?, target = ?, frequency = ?, days_per_week = ?, archived = ?
		WHERE id = ? AND user_id = ?`,
		h.Name, nullString(h.Unit), nullFloat(h.Target),
		string(h.Frequency), h.DaysPerWeek, h.Archived,
		h.ID, h.UserID,
	)
	return err
}

// ArchiveHabit marks a habit archived. Its logs are retained.
func (db *DB) ArchiveHabit(id, userID string) error {
	_, err := db.conn.Exec(
		"UPDATE habits SET archived = 1 WHERE id = ? AND user_id = ?", id, userID)
	return err
}

// CountHabits returns the number of non-archived habits a user has.
func (db *DB) CountHabits(userID string) (int, error) {
	var n int
	err := db.conn.QueryRow(
		"SELECT COUNT(*) FROM habits WHERE user_id = ? AND archived = 0", userID).Scan(&n)
	return n, err
}

// scannable covers both sql.Row and sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanHabit(row scannable) (habit.Habit, error) {
	var (
		h         habit.Habit
		unit      sql.NullString
		target    sql.NullFloat64
		createdAt string
		habitType string
		frequency string
	)
	err := row.Scan(&h.ID, &h.UserID, &h.Name, &habitType, &unit, &target,
		&frequency, &h.DaysPerWeek, &h.Archived, &createdAt)
	if err != nil {
		return habit.Habit{}, err
	}
	h.Type = habit.Type(habitType)
	h.Frequency = habit.Frequency(frequency)
	if unit.Valid {
		h.Unit = unit.String
	}
	if target.Valid {
		h.Target = target.Float64
	}
	h.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return h, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(f float64) any {
	if f == 0 {
		return nil
	}
	return f
}

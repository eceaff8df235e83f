package store

import (
	"database/sql"
	"time"

	"github.com/evanmoss/tally/internal/habit"
)

// UpsertLog creates the log for (habit, date) or overwrites its value when
// one already exists. Re-logging replaces the stored value; cumulative
// totals are the caller's responsibility. The stored row is returned.
func (db *DB) UpsertLog(l habit.Log) (habit.Log, error) {
	now := time.Now().UTC()
	num, flag := logColumns(l.Value)

	existing, err := db.getLogByHabitDate(l.HabitID, l.Date)
	if err != nil {
		return habit.Log{}, err
	}
	if existing != nil {
		_, err = db.conn.Exec(`
			UPDATE habit_logs SET numeric_value = ?, boolean_value = ?, updated_at = ?
			WHERE id = ?`,
			num, flag, now.Format(time.RFC3339), existing.ID)
		if err != nil {
			return habit.Log{}, err
		}
		existing.Value = l.Value
		existing.UpdatedAt = now
		return *existing, nil
	}

	l.CreatedAt = now
	l.UpdatedAt = now
	_, err = db.conn.Exec(`
		INSERT INTO habit_logs (id, habit_id, date, numeric_value, boolean_value, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.HabitID, l.Date, num, flag,
		now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		return habit.Log{}, err
	}
	return l, nil
}

// GetLog returns a log by ID, or nil if none.
func (db *DB) GetLog(id string) (*habit.Log, error) {
	row := db.conn.QueryRow(`
		SELECT id, habit_id, date, numeric_value, boolean_value, created_at, updated_at
		FROM habit_logs WHERE id = ?`, id)
	return scanLogRow(row)
}

func (db *DB) getLogByHabitDate(habitID, date string) (*habit.Log, error) {
	row := db.conn.QueryRow(`
		SELECT id, habit_id, date, numeric_value, boolean_value, created_at, updated_at
		FROM habit_logs WHERE habit_id = ? AND date = ?`, habitID, date)
	return scanLogRow(row)
}

// ListLogs returns a habit's logs within [start, end] in ascending date
// order. Empty bounds are open-ended.
func (db *DB) ListLogs(habitID, start, end string) ([]habit.Log, error) {
	query := `
		SELECT id, habit_id, date, numeric_value, boolean_value, created_at, updated_at
		FROM habit_logs WHERE habit_id = ?`
	args := []any{habitID}
	if start != "" {
		query += " AND date >= ?"
		args = append(args, start)
	}
	if end != "" {
		query += " AND date <= ?"
		args = append(args, end)
	}
	query += " ORDER BY date"
	return db.queryLogs(query, args...)
}

// ListLogDatesDesc returns all of a habit's log dates, most recent first.
func (db *DB) ListLogDatesDesc(habitID string) ([]string, error) {
	rows, err := db.conn.Query(
		"SELECT date FROM habit_logs WHERE habit_id = ? ORDER BY date DESC", habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// ListLogsDesc returns all of a habit's logs, most recent first.
func (db *DB) ListLogsDesc(habitID string) ([]habit.Log, error) {
	return db.queryLogs(`
		SELECT id, habit_id, date, numeric_value, boolean_value, created_at, updated_at
		FROM habit_logs WHERE habit_id = ? ORDER BY date DESC`, habitID)
}

// DistinctUserLogDates returns the distinct dates with at least one log
// across all of a user's habits, optionally bounded to [start, end].
func (db *DB) DistinctUserLogDates(userID, start, end string) ([]string, error) {
	query := `
		SELECT DISTINCT l.date
		FROM habit_logs l
		JOIN habits h ON h.id = l.habit_id
		WHERE h.user_id = ?`
	args := []any{userID}
	if start != "" {
		query += " AND l.date >= ?"
		args = append(args, start)
	}
	if end != "" {
		query += " AND l.date <= ?"
		args = append(args, end)
	}
	query += " ORDER BY l.date DESC"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// DeleteLog removes a log row, scoped to the owning user. It reports
// whether a row was deleted.
func (db *DB) DeleteLog(id, userID string) (bool, error) {
	res, err := db.conn.Exec(`
		DELETE FROM habit_logs WHERE id = ? AND habit_id IN
		(SELECT id FROM habits WHERE user_id = ?)`, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (db *DB) queryLogs(query string, args ...any) ([]habit.Log, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []habit.Log
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func scanLogRow(row *sql.Row) (*habit.Log, error) {
	l, err := scanLog(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanLog(row scannable) (habit.Log, error) {
	var (
		l                    habit.Log
		num                  sql.NullFloat64
		flag                 sql.NullBool
		createdAt, updatedAt string
	)
	err := row.Scan(&l.ID, &l.HabitID, &l.Date, &num, &flag, &createdAt, &updatedAt)
	if err != nil {
		return habit.Log{}, err
	}
	switch {
	case num.Valid:
		l.Value = habit.Numeric(num.Float64)
	case flag.Valid:
		l.Value = habit.Flag(flag.Bool)
	}
	l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	l.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return l, nil
}

// logColumns splits a tagged value into its nullable storage columns.
func logColumns(v habit.LogValue) (any, any) {
	if n, ok := v.Num(); ok {
		return n, nil
	}
	if b, ok := v.Bool(); ok {
		return nil, b
	}
	return nil, nil
}

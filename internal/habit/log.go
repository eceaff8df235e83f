package habit

import (
	"encoding/json"
	"time"
)

// ValueKind tags which variant of LogValue is set.
type ValueKind int

const (
	// KindNone marks an empty value (no log, or a corrupt row).
	KindNone ValueKind = iota

	// KindNumeric marks a measurable habit's numeric value.
	KindNumeric

	// KindFlag marks a boolean habit's done/not-done flag.
	KindFlag
)

// LogValue is the tagged variant stored in a log: a numeric amount for
// measurable habits or a flag for boolean ones. The zero value is KindNone.
type LogValue struct {
	kind ValueKind
	num  float64
	flag bool
}

// Numeric wraps a measurable value.
func Numeric(v float64) LogValue { return LogValue{kind: KindNumeric, num: v} }

// Flag wraps a boolean value.
func Flag(b bool) LogValue { return LogValue{kind: KindFlag, flag: b} }

// Kind reports which variant is set.
func (v LogValue) Kind() ValueKind { return v.kind }

// Num returns the numeric value and whether the variant is numeric.
func (v LogValue) Num() (float64, bool) { return v.num, v.kind == KindNumeric }

// Bool returns the flag value and whether the variant is a flag.
func (v LogValue) Bool() (bool, bool) { return v.flag, v.kind == KindFlag }

// Log is one day's recorded value for one habit. Date is a timezone-naive
// civil date key; at most one log exists per (HabitID, Date) and re-logging
// the same day overwrites the stored value.
type Log struct {
	ID        string
	HabitID   string
	Date      string // YYYY-MM-DD
	Value     LogValue
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LogMap indexes logs by date key. Later entries win, though the store's
// one-log-per-day invariant means duplicates do not normally occur.
func LogMap(logs []Log) map[string]LogValue {
	m := make(map[string]LogValue, len(logs))
	for _, l := range logs {
		m[l.Date] = l.Value
	}
	return m
}

// logJSON is the wire shape of a log. Exactly one of NumericValue or
// BooleanValue is set, matching the owning habit's type.
type logJSON struct {
	ID           string    `json:"id"`
	HabitID      string    `json:"habitId"`
	Date         string    `json:"date"`
	NumericValue *float64  `json:"numericValue,omitempty"`
	BooleanValue *bool     `json:"booleanValue,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MarshalJSON flattens the tagged value into numericValue/booleanValue.
func (l Log) MarshalJSON() ([]byte, error) {
	out := logJSON{
		ID:        l.ID,
		HabitID:   l.HabitID,
		Date:      l.Date,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if n, ok := l.Value.Num(); ok {
		out.NumericValue = &n
	}
	if b, ok := l.Value.Bool(); ok {
		out.BooleanValue = &b
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the flattened wire shape back into a tagged value.
// A row carrying both fields keeps the numeric one.
func (l *Log) UnmarshalJSON(data []byte) error {
	var in logJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	l.ID = in.ID
	l.HabitID = in.HabitID
	l.Date = in.Date
	l.CreatedAt = in.CreatedAt
	l.UpdatedAt = in.UpdatedAt
	switch {
	case in.NumericValue != nil:
		l.Value = Numeric(*in.NumericValue)
	case in.BooleanValue != nil:
		l.Value = Flag(*in.BooleanValue)
	default:
		l.Value = LogValue{}
	}
	return nil
}

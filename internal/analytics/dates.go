// Package analytics turns a sparse, date-keyed log of habit entries into
// streaks, completion rates, period rollups, and insight messages. All
// computation is pure: each function is a deterministic function of its
// inputs plus an explicit reference date, with no hidden state.
//
// Dates throughout the package are timezone-naive civil date keys in
// YYYY-MM-DD form. The package never parses timezone-aware instants.
package analytics

import (
	"sort"
	"time"
)

// dateLayout is the canonical civil date key format.
const dateLayout = "2006-01-02"

// Clock abstracts the system clock so that "today" can be fixed in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the real system time.
var SystemClock Clock = systemClock{}

// DateKey formats a time as a canonical YYYY-MM-DD key.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// Today returns the current civil date key according to the given clock.
// A nil clock falls back to the system clock.
func Today(clock Clock) string {
	if clock == nil {
		clock = SystemClock
	}
	return DateKey(clock.Now())
}

// parseKey parses a date key. Malformed keys return ok=false; callers skip
// the record rather than failing the computation.
func parseKey(key string) (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// AddDays shifts a date key by n calendar days. Malformed keys are returned
// unchanged.
func AddDays(key string, n int) string {
	t, ok := parseKey(key)
	if !ok {
		return key
	}
	return DateKey(t.AddDate(0, 0, n))
}

// DaysInRange returns every date key from start to end inclusive, ascending.
// An inverted or malformed range yields an empty slice.
func DaysInRange(start, end string) []string {
	s, ok := parseKey(start)
	if !ok {
		return nil
	}
	e, ok := parseKey(end)
	if !ok {
		return nil
	}

	var days []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, DateKey(d))
	}
	return days
}

// Bucket is one aggregation window, inclusive on both ends.
type Bucket struct {
	Start string
	End   string
}

// WeekBuckets partitions [start, end] into consecutive 7-day windows
// beginning at start. The windows are anchored to the range start, not to
// any fixed weekday, and the final window is truncated to end when the
// range length is not a multiple of 7.
func WeekBuckets(start, end string) []Bucket {
	s, ok := parseKey(start)
	if !ok {
		return nil
	}
	e, ok := parseKey(end)
	if !ok {
		return nil
	}

	var buckets []Bucket
	for ws := s; !ws.After(e); ws = ws.AddDate(0, 0, 7) {
		we := ws.AddDate(0, 0, 6)
		if we.After(e) {
			we = e
		}
		buckets = append(buckets, Bucket{Start: DateKey(ws), End: DateKey(we)})
	}
	return buckets
}

// MonthBuckets partitions [start, end] into calendar months, with the first
// and last buckets clipped to the range boundaries.
func MonthBuckets(start, end string) []Bucket {
	s, ok := parseKey(start)
	if !ok {
		return nil
	}
	e, ok := parseKey(end)
	if !ok {
		return nil
	}
	if s.After(e) {
		return nil
	}

	var buckets []Bucket
	firstOfMonth := time.Date(s.Year(), s.Month(), 1, 0, 0, 0, 0, time.UTC)
	for m := firstOfMonth; !m.After(e); m = m.AddDate(0, 1, 0) {
		ms, me := m, m.AddDate(0, 1, -1)
		if ms.Before(s) {
			ms = s
		}
		if me.After(e) {
			me = e
		}
		buckets = append(buckets, Bucket{Start: DateKey(ms), End: DateKey(me)})
	}
	return buckets
}

// DistinctDatesDesc de-duplicates date keys and sorts them descending, the
// shape the streak calculator expects.
func DistinctDatesDesc(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

package analytics

import (
	"testing"
	"time"
)

// fixedClock pins Now() for deterministic tests.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

func TestDateKey(t *testing.T) {
	got := DateKey(time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC))
	if got != "2024-03-05" {
		t.Errorf("expected zero-padded 2024-03-05, got %q", got)
	}
}

func TestToday_UsesClock(t *testing.T) {
	clock := fixedClock{t: time.Date(2024, 12, 10, 8, 0, 0, 0, time.UTC)}
	if got := Today(clock); got != "2024-12-10" {
		t.Errorf("expected 2024-12-10, got %q", got)
	}
}

func TestDaysInRange(t *testing.T) {
	days := DaysInRange("2024-12-29", "2025-01-02")
	want := []string{"2024-12-29", "2024-12-30", "2024-12-31", "2025-01-01", "2025-01-02"}
	if len(days) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(days))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("day %d: expected %s, got %s", i, want[i], days[i])
		}
	}
}

func TestDaysInRange_SingleDay(t *testing.T) {
	days := DaysInRange("2024-12-10", "2024-12-10")
	if len(days) != 1 || days[0] != "2024-12-10" {
		t.Errorf("expected single day, got %v", days)
	}
}

func TestDaysInRange_Inverted(t *testing.T) {
	if days := DaysInRange("2024-12-10", "2024-12-01"); len(days) != 0 {
		t.Errorf("expected empty slice for inverted range, got %v", days)
	}
}

func TestDaysInRange_Malformed(t *testing.T) {
	if days := DaysInRange("not-a-date", "2024-12-10"); days != nil {
		t.Errorf("expected nil for malformed start, got %v", days)
	}
}

func TestWeekBuckets_ExactWeeks(t *testing.T) {
	buckets := WeekBuckets("2024-12-02", "2024-12-15")
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Start != "2024-12-02" || buckets[0].End != "2024-12-08" {
		t.Errorf("bucket 0: got %+v", buckets[0])
	}
	if buckets[1].Start != "2024-12-09" || buckets[1].End != "2024-12-15" {
		t.Errorf("bucket 1: got %+v", buckets[1])
	}
}

func TestWeekBuckets_TruncatedTail(t *testing.T) {
	buckets := WeekBuckets("2024-12-01", "2024-12-10")
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[1].Start != "2024-12-08" || buckets[1].End != "2024-12-10" {
		t.Errorf("expected truncated final bucket 12-08..12-10, got %+v", buckets[1])
	}
}

func TestWeekBuckets_NotWeekdayAligned(t *testing.T) {
	// A Wednesday start anchors the buckets at Wednesday.
	buckets := WeekBuckets("2024-12-04", "2024-12-17")
	if buckets[0].Start != "2024-12-04" || buckets[0].End != "2024-12-10" {
		t.Errorf("buckets must anchor at range start, got %+v", buckets[0])
	}
}

func TestMonthBuckets_ClipsToRange(t *testing.T) {
	buckets := MonthBuckets("2024-11-15", "2025-01-10")
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}
	if buckets[0].Start != "2024-11-15" || buckets[0].End != "2024-11-30" {
		t.Errorf("bucket 0: got %+v", buckets[0])
	}
	if buckets[1].Start != "2024-12-01" || buckets[1].End != "2024-12-31" {
		t.Errorf("bucket 1: got %+v", buckets[1])
	}
	if buckets[2].Start != "2025-01-01" || buckets[2].End != "2025-01-10" {
		t.Errorf("bucket 2: got %+v", buckets[2])
	}
}

func TestMonthBuckets_Inverted(t *testing.T) {
	if buckets := MonthBuckets("2025-01-10", "2024-11-15"); len(buckets) != 0 {
		t.Errorf("expected no buckets, got %v", buckets)
	}
}

func TestDistinctDatesDesc(t *testing.T) {
	got := DistinctDatesDesc([]string{"2024-12-08", "2024-12-10", "2024-12-08", "2024-12-09"})
	want := []string{"2024-12-10", "2024-12-09", "2024-12-08"}
	if len(got) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

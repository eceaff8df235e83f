package analytics

import "testing"

const streakToday = "2024-12-10"

func TestStreak_Empty(t *testing.T) {
	if got := Streak(nil, streakToday); got != 0 {
		t.Errorf("expected 0 for empty input, got %d", got)
	}
}

func TestStreak_TodayOnly(t *testing.T) {
	if got := Streak([]string{"2024-12-10"}, streakToday); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestStreak_YesterdayOnly(t *testing.T) {
	// Today not yet logged does not break the streak.
	if got := Streak([]string{"2024-12-09"}, streakToday); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestStreak_TwoDaysAgoOnly(t *testing.T) {
	// A fully missed yesterday terminates the streak.
	if got := Streak([]string{"2024-12-08"}, streakToday); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestStreak_ContinuityThroughUnloggedToday(t *testing.T) {
	// Logs on 12-08 and 12-09, today (12-10) unlogged: yesterday is
	// counted via the grace rule, the cursor skips to 12-08 and matches.
	got := Streak([]string{"2024-12-09", "2024-12-08"}, streakToday)
	if got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestStreak_LongRunEndingToday(t *testing.T) {
	dates := []string{"2024-12-10", "2024-12-09", "2024-12-08", "2024-12-07"}
	if got := Streak(dates, streakToday); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
}

func TestStreak_GapTerminates(t *testing.T) {
	// 12-07 is missing, so only today and yesterday count.
	dates := []string{"2024-12-10", "2024-12-09", "2024-12-06", "2024-12-05"}
	if got := Streak(dates, streakToday); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestStreak_GraceOnlyAppliesBeforeFirstMatch(t *testing.T) {
	// Once the run has started, a single missed day ends it even though
	// the next date is exactly one behind the cursor.
	dates := []string{"2024-12-10", "2024-12-08"}
	if got := Streak(dates, streakToday); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
}

func TestStreak_AcrossMonthBoundary(t *testing.T) {
	dates := []string{"2024-12-01", "2024-11-30", "2024-11-29"}
	if got := Streak(dates, "2024-12-01"); got != 3 {
		t.Errorf("expected 3 across the month boundary, got %d", got)
	}
}

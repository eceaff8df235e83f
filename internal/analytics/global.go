package analytics

// GlobalStats is the cross-habit rollup shown on the dashboard.
type GlobalStats struct {
	TotalHabits int `json:"totalHabits"`

	// DaysWithProgress counts distinct dates with at least one log row in
	// range, for any habit. Log presence is enough; the value is not
	// checked against any completion threshold.
	DaysWithProgress int `json:"daysWithProgress"`

	// GlobalStreak is the streak over distinct dates on which any habit
	// has a log row.
	GlobalStreak int `json:"globalStreak"`
}

// Global computes cross-habit stats. datesInRange holds the log dates
// falling inside the queried range; allDates holds every log date across
// the user's habits, for the streak. Neither input needs to be sorted or
// de-duplicated.
func Global(totalHabits int, datesInRange, allDates []string, today string) GlobalStats {
	inRange := make(map[string]struct{}, len(datesInRange))
	for _, d := range datesInRange {
		inRange[d] = struct{}{}
	}

	return GlobalStats{
		TotalHabits:      totalHabits,
		DaysWithProgress: len(inRange),
		GlobalStreak:     Streak(DistinctDatesDesc(allDates), today),
	}
}

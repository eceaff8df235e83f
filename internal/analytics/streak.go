package analytics

// Streak computes the current consecutive-day run ending at or adjacent to
// today. completedDesc must hold distinct completed date keys sorted
// descending (see DistinctDatesDesc); today is the reference civil date.
//
// The walk starts a cursor at today. A completed date matching the cursor
// extends the run and moves the cursor back one day. If nothing has been
// counted yet and the most recent completed date is yesterday, the run is
// still live (today simply has no log yet), so it is counted and the
// cursor skips back two days. Any other gap ends the run.
func Streak(completedDesc []string, today string) int {
	if len(completedDesc) == 0 {
		return 0
	}

	streak := 0
	cursor := today
	for _, date := range completedDesc {
		switch {
		case date == cursor:
			streak++
			cursor = AddDays(cursor, -1)
		case streak == 0 && date == AddDays(cursor, -1):
			streak++
			cursor = AddDays(cursor, -2)
		default:
			return streak
		}
	}
	return streak
}

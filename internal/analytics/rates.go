package analytics

import (
	"math"

	"github.com/evanmoss/tally/internal/habit"
)

// SuccessRate computes the goal-met percentage over the trailing window of
// windowDays ending at today. Measurable days count only when the value
// reaches the daily target; boolean days when flagged done. The expected
// completion count is pro-rated for custom frequencies (daysPerWeek/7 of
// the window), so a 3-days-per-week habit hitting 3 days in a 7-day window
// scores 100. The result is clamped to [0, 100]; an empty window scores 0.
func SuccessRate(h habit.Habit, logs map[string]habit.LogValue, today string, windowDays int) int {
	if windowDays <= 0 {
		return 0
	}

	completed := 0
	day := today
	for i := 0; i < windowDays; i++ {
		if v, logged := logs[day]; logged && IsCompleted(h, v, ModeGoalMet) {
			completed++
		}
		day = AddDays(day, -1)
	}

	expected := float64(windowDays)
	if h.Frequency == habit.FrequencyCustom && h.DaysPerWeek > 0 {
		expected = float64(h.DaysPerWeek) / 7.0 * float64(windowDays)
	}
	if expected == 0 {
		return 0
	}

	pct := int(math.Round(float64(completed) / expected * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}
